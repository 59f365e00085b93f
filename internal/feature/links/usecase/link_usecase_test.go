package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"url_shortener/internal/feature/links/domain/entity"
	"url_shortener/internal/feature/links/domain/shortcode"
	"url_shortener/internal/shared/apperr"
)

func newTestLinkUsecase(repo LinkRepository) *linkUsecase {
	return NewLinkUsecase(repo, shortcode.NewGenerator(shortcode.DefaultLength))
}

func strPtr(s string) *string { return &s }

func TestLinkUsecase_Create(t *testing.T) {
	t.Run("derives the short code from the long URL", func(t *testing.T) {
		var stored *entity.Link
		mockRepo := &mockLinkRepository{
			CreateFunc: func(ctx context.Context, link *entity.Link) error {
				stored = link
				link.ID = 1
				return nil
			},
		}

		link, err := newTestLinkUsecase(mockRepo).Create(context.Background(), 5, "https://example.com", strPtr("home"))

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, uint(1), link.ID)
		assert.Equal(t, "EAaArVRs", link.ShortURL)
		assert.Equal(t, "https://example.com", link.LongURL)
		assert.Equal(t, uint(5), link.UserID)
		require.NotNil(t, link.Description)
		assert.Equal(t, "home", *link.Description)
	})

	t.Run("description is optional", func(t *testing.T) {
		link, err := newTestLinkUsecase(&mockLinkRepository{}).Create(context.Background(), 5, "https://example.com", nil)

		require.NoError(t, err)
		assert.Nil(t, link.Description)
	})

	t.Run("conflict from the store is returned as is", func(t *testing.T) {
		mockRepo := &mockLinkRepository{
			CreateFunc: func(ctx context.Context, link *entity.Link) error { return ErrShortCodeConflict },
		}

		_, err := newTestLinkUsecase(mockRepo).Create(context.Background(), 5, "https://example.com", nil)

		assert.ErrorIs(t, err, ErrShortCodeConflict)
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("blank long URL", func(t *testing.T) {
		mockRepo := &mockLinkRepository{
			CreateFunc: func(ctx context.Context, link *entity.Link) error {
				t.Error("Create must not be called")
				return nil
			},
		}

		_, err := newTestLinkUsecase(mockRepo).Create(context.Background(), 5, "  ", nil)

		assert.ErrorIs(t, err, ErrEmptyLongURL)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("configured length is honoured", func(t *testing.T) {
		uc := NewLinkUsecase(&mockLinkRepository{}, shortcode.NewGenerator(12))

		link, err := uc.Create(context.Background(), 1, "https://example.com/a", nil)

		require.NoError(t, err)
		assert.Len(t, link.ShortURL, 12)
	})
}

func TestLinkUsecase_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := &mockLinkRepository{
			FindByShortCodeFunc: func(ctx context.Context, code string) (*entity.Link, error) {
				return &entity.Link{ShortURL: code, LongURL: "https://example.com"}, nil
			},
		}

		link, err := newTestLinkUsecase(mockRepo).Get(context.Background(), "EAaArVRs")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", link.LongURL)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := newTestLinkUsecase(&mockLinkRepository{}).Get(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrLinkNotFound)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestLinkUsecase_List(t *testing.T) {
	tests := []struct {
		name    string
		skip    int
		limit   int
		wantErr error
	}{
		{"defaults", 0, DefaultPageSize, nil},
		{"smallest page", 0, 1, nil},
		{"largest page", 20, MaxPageSize, nil},
		{"negative skip", -1, 10, ErrInvalidSkip},
		{"zero limit", 0, 0, ErrInvalidLimit},
		{"limit over maximum", 0, MaxPageSize + 1, ErrInvalidLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			mockRepo := &mockLinkRepository{
				ListByOwnerFunc: func(ctx context.Context, ownerID uint, offset, limit int) ([]entity.Link, error) {
					called = true
					assert.Equal(t, uint(3), ownerID)
					assert.Equal(t, tt.skip, offset)
					assert.Equal(t, tt.limit, limit)
					return []entity.Link{{ID: 1}}, nil
				},
			}

			links, err := newTestLinkUsecase(mockRepo).List(context.Background(), 3, tt.skip, tt.limit)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, apperr.ErrValidation)
				assert.False(t, called, "store must not be queried with invalid bounds")
				return
			}
			require.NoError(t, err)
			assert.Len(t, links, 1)
		})
	}
}

func TestLinkUsecase_Update(t *testing.T) {
	t.Run("passes owner and fields through", func(t *testing.T) {
		mockRepo := &mockLinkRepository{
			UpdateFunc: func(ctx context.Context, code string, ownerID uint, longURL, description *string) (*entity.Link, error) {
				assert.Equal(t, "EAaArVRs", code)
				assert.Equal(t, uint(3), ownerID)
				require.NotNil(t, longURL)
				assert.Nil(t, description)
				return &entity.Link{ShortURL: code, LongURL: *longURL}, nil
			},
		}

		link, err := newTestLinkUsecase(mockRepo).Update(context.Background(), "EAaArVRs", 3, strPtr("https://example.org"), nil)

		require.NoError(t, err)
		assert.Equal(t, "EAaArVRs", link.ShortURL, "short code must not be recomputed")
		assert.Equal(t, "https://example.org", link.LongURL)
	})

	t.Run("blank long URL", func(t *testing.T) {
		_, err := newTestLinkUsecase(&mockLinkRepository{}).Update(context.Background(), "EAaArVRs", 3, strPtr(""), nil)

		assert.ErrorIs(t, err, ErrEmptyLongURL)
	})

	t.Run("not owned", func(t *testing.T) {
		_, err := newTestLinkUsecase(&mockLinkRepository{}).Update(context.Background(), "EAaArVRs", 4, nil, strPtr("x"))

		assert.ErrorIs(t, err, ErrLinkNotFound)
	})
}

func TestLinkUsecase_Delete(t *testing.T) {
	t.Run("delegates to repository", func(t *testing.T) {
		mockRepo := &mockLinkRepository{
			DeleteFunc: func(ctx context.Context, code string, ownerID uint) error {
				assert.Equal(t, "EAaArVRs", code)
				assert.Equal(t, uint(3), ownerID)
				return nil
			},
		}

		assert.NoError(t, newTestLinkUsecase(mockRepo).Delete(context.Background(), "EAaArVRs", 3))
	})

	t.Run("storage error", func(t *testing.T) {
		dbErr := errors.New("database error")
		mockRepo := &mockLinkRepository{
			DeleteFunc: func(ctx context.Context, code string, ownerID uint) error { return dbErr },
		}

		err := newTestLinkUsecase(mockRepo).Delete(context.Background(), "EAaArVRs", 3)

		assert.ErrorIs(t, err, dbErr)
	})
}
