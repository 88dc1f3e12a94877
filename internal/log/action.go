package log

type Action = string

const (
	SaveBookForUser     Action = "SaveBookForUser"
	RemoveBook                 = "RemoveBook"
	RemoveBookFromUser         = "RemoveBookFromUser"
	GetAllBooks                = "GetAllBooks"
	FindBooksByAuthor          = "FindBooksByAuthor"
	FindBookByID               = "FindBookByID"
	GetBooksOwnedByUser        = "GetBooksOwnedByUser"
	SearchCatalog              = "SearchCatalog"
)
