package log

import (
	"github.com/project/bookshelf/pkg/logger"
	"go.uber.org/zap"
)

func InfoSaveBookForUser(l *zap.Logger, msg string, traceID, title, userID string, id ...string) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("book_title", title),
			zap.String("user_id", userID),
			zap.String("action", SaveBookForUser))
		return
	}
	logger.MakeInfo(l, "book was saved for user",
		zap.String("trace_id", traceID),
		zap.String("book_id", id[0]),
		zap.String("book_title", title),
		zap.String("user_id", userID),
		zap.String("action", SaveBookForUser))
}

func ErrorSaveBookForUser(l *zap.Logger, err error, msg string, traceID, title, userID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_title", title),
		zap.String("user_id", userID),
		zap.Error(err),
		zap.String("action", SaveBookForUser))
}

func InfoRemoveBook(l *zap.Logger, msg string, traceID, bookID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", bookID),
		zap.String("action", RemoveBook))
}

func ErrorRemoveBook(l *zap.Logger, err error, msg string, traceID, bookID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", bookID),
		zap.Error(err),
		zap.String("action", RemoveBook))
}

func InfoGetAllBooks(l *zap.Logger, msg string, traceID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("action", GetAllBooks))
}

func ErrorGetAllBooks(l *zap.Logger, err error, msg string, traceID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Error(err),
		zap.String("action", GetAllBooks))
}

func InfoFindBookByID(l *zap.Logger, msg string, traceID, bookID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", bookID),
		zap.String("action", FindBookByID))
}

func ErrorFindBookByID(l *zap.Logger, err error, msg string, traceID, bookID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", bookID),
		zap.Error(err),
		zap.String("action", FindBookByID))
}

func InfoFindBooksByAuthor(l *zap.Logger, msg string, traceID, authorID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_id", authorID),
		zap.String("action", FindBooksByAuthor))
}

func ErrorFindBooksByAuthor(l *zap.Logger, err error, msg string, traceID, authorID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_id", authorID),
		zap.Error(err),
		zap.String("action", FindBooksByAuthor))
}
