package main

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// sendText writes a plain text answer and logs any write failure.
func (api *APIHandler) sendText(w http.ResponseWriter, r *http.Request, status int, message string) {
	if err := WriteTextResponse(r.Context(), w, status, message); err != nil {
		api.GetLoggerFromContext(r.Context()).Error("failed to send response", zap.Error(err))
	}
}

// sendJSON writes a json answer and logs any write failure.
func (api *APIHandler) sendJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if err := WriteJSONResponse(r.Context(), w, status, data); err != nil {
		api.GetLoggerFromContext(r.Context()).Error("failed to send response", zap.Error(err))
	}
}

// GetAllBooks lists every book along with its number of comments.
func (api *APIHandler) GetAllBooks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	logger := api.GetLoggerFromContext(r.Context())
	books, err := api.bookService.GetAll(r.Context())
	if err != nil {
		logger.Error("failed to get all books", zap.Error(err))
		api.sendText(w, r, http.StatusInternalServerError, MsgInternalServerError)
		return
	}
	logger.Info("success to get all books", zap.Int("books.total", len(books)))
	api.sendJSON(w, r, http.StatusOK, books)
}

// CreateBook creates a book from its title and responds with its id and title.
func (api *APIHandler) CreateBook(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	logger := api.GetLoggerFromContext(r.Context())
	var req CreateBookRequest
	if err := DecodeCreateBookRequestBody(r, &req); err != nil {
		logger.Error("failed to create book", zap.Error(err))
		api.sendText(w, r, http.StatusBadRequest, MsgInvalidRequestBody)
		return
	}

	if err := ValidateCreateBookRequestBody(&req); err != nil {
		logger.Info("invalid create book request", zap.Error(err))
		api.sendText(w, r, http.StatusOK, err.Error())
		return
	}

	book, err := api.bookService.Add(r.Context(), req.Title)
	if err != nil {
		logger.Error("failed to create book", zap.Error(err))
		api.sendText(w, r, http.StatusInternalServerError, MsgInternalServerError)
		return
	}
	logger.Info("success to create book", zap.String("book.id", book.ID))
	api.sendJSON(w, r, http.StatusOK, CreatedBook{ID: book.ID, Title: book.Title})
}

// DeleteAllBooks removes every book.
func (api *APIHandler) DeleteAllBooks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	logger := api.GetLoggerFromContext(r.Context())
	if err := api.bookService.DeleteAll(r.Context()); err != nil {
		logger.Error("failed to delete all books", zap.Error(err))
		api.sendText(w, r, http.StatusInternalServerError, MsgInternalServerError)
		return
	}
	logger.Info("success to delete all books")
	api.sendText(w, r, http.StatusOK, MsgCompleteDeleteSuccess)
}

// GetOneBook responds with a single book and its number of comments.
func (api *APIHandler) GetOneBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	logger := api.GetLoggerFromContext(r.Context()).With(zap.String("book.id", id))
	book, err := api.bookService.GetOne(r.Context(), id)
	if errors.Is(err, ErrBookNotFound) {
		logger.Info("book does not exist")
		api.sendText(w, r, http.StatusOK, MsgBookNotFound)
		return
	}
	if err != nil {
		logger.Error("failed to get book", zap.Error(err))
		api.sendText(w, r, http.StatusInternalServerError, MsgInternalServerError)
		return
	}
	logger.Info("success to get book")
	api.sendJSON(w, r, http.StatusOK, book)
}

// AddComment appends a comment to a book and responds with the updated book.
func (api *APIHandler) AddComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	logger := api.GetLoggerFromContext(r.Context()).With(zap.String("book.id", id))
	var req AddCommentRequest
	if err := DecodeAddCommentRequestBody(r, &req); err != nil {
		logger.Error("failed to add comment", zap.Error(err))
		api.sendText(w, r, http.StatusBadRequest, MsgInvalidRequestBody)
		return
	}

	if err := ValidateAddCommentRequestBody(&req); err != nil {
		logger.Info("invalid add comment request", zap.Error(err))
		api.sendText(w, r, http.StatusOK, err.Error())
		return
	}

	book, err := api.bookService.AddComment(r.Context(), id, req.Comment)
	if errors.Is(err, ErrBookNotFound) {
		logger.Info("book does not exist")
		api.sendText(w, r, http.StatusOK, MsgBookNotFound)
		return
	}
	if err != nil {
		logger.Error("failed to add comment", zap.Error(err))
		api.sendText(w, r, http.StatusInternalServerError, MsgInternalServerError)
		return
	}
	logger.Info("success to add comment", zap.Int("book.commentcount", book.CommentCount))
	api.sendJSON(w, r, http.StatusOK, book)
}

// DeleteOneBook removes a single book.
func (api *APIHandler) DeleteOneBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	logger := api.GetLoggerFromContext(r.Context()).With(zap.String("book.id", id))
	err := api.bookService.Delete(r.Context(), id)
	if errors.Is(err, ErrBookNotFound) {
		logger.Info("book does not exist")
		api.sendText(w, r, http.StatusOK, MsgBookNotFound)
		return
	}
	if err != nil {
		logger.Error("failed to delete book", zap.Error(err))
		api.sendJSON(w, r, http.StatusInternalServerError, DeleteError{Error: MsgCouldNotDelete, ID: id})
		return
	}
	logger.Info("success to delete book")
	api.sendText(w, r, http.StatusOK, MsgDeleteSuccessful)
}
