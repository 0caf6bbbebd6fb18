package main

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type BookServiceProvider interface {
	Add(ctx context.Context, title string) (Book, error)
	GetOne(ctx context.Context, id string) (Book, error)
	GetAll(ctx context.Context) ([]Book, error)
	AddComment(ctx context.Context, id string, comment string) (Book, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type BookService struct {
	logger  *zap.Logger
	ids     UIDHandler
	storage BookStorage
	queue   Queuer
}

// NewBookService provides a book service. The queue is optional and
// receives every successful write when replication is enabled.
func NewBookService(logger *zap.Logger, ids UIDHandler, storage BookStorage, queue Queuer) BookServiceProvider {
	return &BookService{
		logger:  logger,
		ids:     ids,
		storage: storage,
		queue:   queue,
	}
}

// publish pushes a change event to the replication queue if any. All
// operations share one list so replicas replay them in commit order.
func (bs *BookService) publish(ctx context.Context, event BookEvent) {
	if bs.queue == nil {
		return
	}
	if err := bs.queue.Push(ctx, EventsQueue, event); err != nil {
		bs.logger.Error("service: failed to push to queue", zap.String("op", event.Op), zap.String("book.id", event.Book.ID), zap.Error(err))
	}
}

func (bs *BookService) Add(ctx context.Context, title string) (Book, error) {
	book := Book{
		ID:       bs.ids.Generate(),
		Title:    title,
		Comments: []string{},
	}
	if err := bs.storage.Add(ctx, book); err != nil {
		return Book{}, err
	}
	bs.publish(ctx, BookEvent{Op: OpCreate, Book: book})
	return book, nil
}

func (bs *BookService) GetOne(ctx context.Context, id string) (Book, error) {
	id = strings.ToLower(id)
	if !bs.ids.IsValid(id) {
		return Book{}, ErrBookNotFound
	}
	return bs.storage.GetOne(ctx, id)
}

func (bs *BookService) GetAll(ctx context.Context) ([]Book, error) {
	return bs.storage.GetAll(ctx)
}

func (bs *BookService) AddComment(ctx context.Context, id string, comment string) (Book, error) {
	id = strings.ToLower(id)
	if !bs.ids.IsValid(id) {
		return Book{}, ErrBookNotFound
	}
	book, err := bs.storage.AddComment(ctx, id, comment)
	if err != nil {
		return book, err
	}
	bs.publish(ctx, BookEvent{Op: OpComment, Book: Book{ID: id}, Comment: comment})
	return book, nil
}

func (bs *BookService) Delete(ctx context.Context, id string) error {
	id = strings.ToLower(id)
	if !bs.ids.IsValid(id) {
		return ErrBookNotFound
	}
	if err := bs.storage.Delete(ctx, id); err != nil {
		return err
	}
	bs.publish(ctx, BookEvent{Op: OpDelete, Book: Book{ID: id}})
	return nil
}

func (bs *BookService) DeleteAll(ctx context.Context) error {
	if err := bs.storage.DeleteAll(ctx); err != nil {
		return err
	}
	bs.publish(ctx, BookEvent{Op: OpPurge})
	return nil
}
