package log

import (
	"github.com/project/bookshelf/pkg/logger"
	"go.uber.org/zap"
)

func InfoGetBooksOwnedByUser(l *zap.Logger, msg string, traceID, userID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("user_id", userID),
		zap.String("action", GetBooksOwnedByUser))
}

func ErrorGetBooksOwnedByUser(l *zap.Logger, err error, msg string, traceID, userID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("user_id", userID),
		zap.Error(err),
		zap.String("action", GetBooksOwnedByUser))
}

func InfoRemoveBookFromUser(l *zap.Logger, msg string, traceID, bookID, userID string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", bookID),
		zap.String("user_id", userID),
		zap.String("action", RemoveBookFromUser))
}

func ErrorRemoveBookFromUser(l *zap.Logger, err error, msg string, traceID, bookID, userID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_id", bookID),
		zap.String("user_id", userID),
		zap.Error(err),
		zap.String("action", RemoveBookFromUser))
}

func InfoSearchCatalog(l *zap.Logger, msg string, traceID, title, surname string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("title", title),
		zap.String("author_surname", surname),
		zap.String("action", SearchCatalog))
}

func ErrorSearchCatalog(l *zap.Logger, err error, msg string, traceID, title, surname string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("title", title),
		zap.String("author_surname", surname),
		zap.Error(err),
		zap.String("action", SearchCatalog))
}
