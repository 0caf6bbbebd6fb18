package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBookService_Add(t *testing.T) {
	t.Run("should pass: event published", func(t *testing.T) {
		q := &MockQueue{}
		repo := &MockBookStorage{AddFunc: func(ctx context.Context, book Book) error { return nil }}
		bs := NewBookService(zap.NewNop(), NewMockUIDHandler(testBookID, true), repo, q)
		book, err := bs.Add(context.Background(), "title")
		require.NoError(t, err)
		assert.Equal(t, Book{ID: testBookID, Title: "title", Comments: []string{}}, book)

		pushed := q.Pushed()
		require.Len(t, pushed, 1)
		assert.Equal(t, EventsQueue, pushed[0].qid)
		assert.Equal(t, OpCreate, pushed[0].event.Op)
		assert.Equal(t, book, pushed[0].event.Book)
	})

	t.Run("should fail: nothing published", func(t *testing.T) {
		q := &MockQueue{}
		repo := &MockBookStorage{AddFunc: func(ctx context.Context, book Book) error { return errors.New("failure") }}
		bs := NewBookService(zap.NewNop(), NewMockUIDHandler(testBookID, true), repo, q)
		_, err := bs.Add(context.Background(), "title")
		assert.Error(t, err)
		assert.Empty(t, q.Pushed())
	})

	t.Run("should pass: queue failure ignored", func(t *testing.T) {
		q := &MockQueue{PushErr: errors.New("queue down")}
		repo := &MockBookStorage{AddFunc: func(ctx context.Context, book Book) error { return nil }}
		bs := NewBookService(zap.NewNop(), NewMockUIDHandler(testBookID, true), repo, q)
		_, err := bs.Add(context.Background(), "title")
		assert.NoError(t, err)
	})
}

func TestBookService_InvalidIDs(t *testing.T) {
	// storage must never be reached with an invalid id.
	repo := &MockBookStorage{}
	bs := NewBookService(zap.NewNop(), NewMockUIDHandler("", false), repo, nil)
	ctx := context.Background()

	_, err := bs.GetOne(ctx, "x")
	assert.ErrorIs(t, err, ErrBookNotFound)
	_, err = bs.AddComment(ctx, "x", "comment")
	assert.ErrorIs(t, err, ErrBookNotFound)
	assert.ErrorIs(t, bs.Delete(ctx, "x"), ErrBookNotFound)
}

func TestBookService_WritesPublished(t *testing.T) {
	q := &MockQueue{}
	repo := &MockBookStorage{
		AddCommentFunc: func(ctx context.Context, id string, comment string) (Book, error) {
			return Book{ID: id, Comments: []string{comment}, CommentCount: 1}, nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			if id != testBookID {
				return ErrBookNotFound
			}
			return nil
		},
		DeleteAllFunc: func(ctx context.Context) error { return nil },
	}
	bs := NewBookService(zap.NewNop(), NewObjectIDsHandler(), repo, q)
	ctx := context.Background()

	_, err := bs.AddComment(ctx, testBookID, "nice")
	require.NoError(t, err)
	require.NoError(t, bs.Delete(ctx, testBookID))
	require.ErrorIs(t, bs.Delete(ctx, "64a1f0c2e4b0a1b2c3d4e5f7"), ErrBookNotFound)
	require.NoError(t, bs.DeleteAll(ctx))

	pushed := q.Pushed()
	require.Len(t, pushed, 3)
	for _, p := range pushed {
		assert.Equal(t, EventsQueue, p.qid)
	}
	assert.Equal(t, OpComment, pushed[0].event.Op)
	assert.Equal(t, "nice", pushed[0].event.Comment)
	assert.Equal(t, OpDelete, pushed[1].event.Op)
	assert.Equal(t, testBookID, pushed[1].event.Book.ID)
	assert.Equal(t, OpPurge, pushed[2].event.Op)
}

// TestBookService_UppercaseIDs ensures ids are matched case-insensitively.
func TestBookService_UppercaseIDs(t *testing.T) {
	var seen []string
	repo := &MockBookStorage{
		GetOneFunc: func(ctx context.Context, id string) (Book, error) {
			seen = append(seen, id)
			return Book{ID: id}, nil
		},
		AddCommentFunc: func(ctx context.Context, id string, comment string) (Book, error) {
			seen = append(seen, id)
			return Book{ID: id}, nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			seen = append(seen, id)
			return nil
		},
	}
	bs := NewBookService(zap.NewNop(), NewObjectIDsHandler(), repo, nil)
	ctx := context.Background()
	upper := strings.ToUpper(testBookID)

	book, err := bs.GetOne(ctx, upper)
	require.NoError(t, err)
	assert.Equal(t, testBookID, book.ID)
	_, err = bs.AddComment(ctx, upper, "nice")
	require.NoError(t, err)
	require.NoError(t, bs.Delete(ctx, upper))
	assert.Equal(t, []string{testBookID, testBookID, testBookID}, seen)
}
