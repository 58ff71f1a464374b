package postgres_test

import (
	"context"
	"testing"

	"github.com/NomanKhan13/focusTube/internal/adapters/repository/postgres"
	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqlUnitOfWork_Execute(t *testing.T) {

	//Arrange
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()

	ctx := context.Background()
	uow := postgres.NewUnitOfWork(dbConnection)
	videoRepo := postgres.NewSQLVideoRepository(dbConnection)
	commentRepo := postgres.NewSQLCommentRepository(dbConnection)
	likeRepo := postgres.NewSQLLikeRepository(dbConnection)

	t.Run("Should commit when no error", func(t *testing.T) {
		truncate()
		owner := seedUser(t, dbConnection, "alice")
		video := seedVideo(t, dbConnection, owner.ID, "doomed", true)

		//act
		err := uow.Execute(ctx, func(u port.UnitOfWork) error {
			if err := u.CommentRepo().DeleteByVideoID(ctx, video.ID); err != nil {
				return err
			}
			if err := u.LikeRepo().DeleteByVideoID(ctx, video.ID); err != nil {
				return err
			}
			return u.VideoRepo().Delete(ctx, video.ID)
		})

		//assert
		require.NoError(t, err)
		_, err = videoRepo.FindByID(ctx, video.ID)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Should rollback when error occurs", func(t *testing.T) {
		truncate()
		owner := seedUser(t, dbConnection, "alice")
		video := seedVideo(t, dbConnection, owner.ID, "survivor", true)

		//act
		err := uow.Execute(ctx, func(u port.UnitOfWork) error {
			if delErr := u.VideoRepo().Delete(ctx, video.ID); delErr != nil {
				return delErr
			}
			return assert.AnError
		})

		//assert
		require.ErrorIs(t, err, assert.AnError)
		found, err := videoRepo.FindByID(ctx, video.ID)
		require.NoError(t, err)
		require.Equal(t, video.ID, found.ID)
	})

	t.Run("Cascade is atomic", func(t *testing.T) {
		truncate()
		owner := seedUser(t, dbConnection, "alice")
		video := seedVideo(t, dbConnection, owner.ID, "doomed", true)
		require.NoError(t, commentRepo.Create(ctx, &domain.Comment{
			ID: video.ID, VideoID: video.ID, AuthorID: owner.ID, Body: "hello",
		}))
		require.NoError(t, likeRepo.Create(ctx, &domain.Like{VideoID: video.ID, UserID: owner.ID}))

		//act: fail after the children are deleted inside the tx
		err := uow.Execute(ctx, func(u port.UnitOfWork) error {
			if delErr := u.CommentRepo().DeleteByVideoID(ctx, video.ID); delErr != nil {
				return delErr
			}
			if delErr := u.LikeRepo().DeleteByVideoID(ctx, video.ID); delErr != nil {
				return delErr
			}
			return assert.AnError
		})

		//assert: children are still there
		require.ErrorIs(t, err, assert.AnError)
		comments, listErr := commentRepo.ListByVideo(ctx, video.ID, 10, 0)
		require.NoError(t, listErr)
		require.Len(t, comments, 1)
		likes, countErr := likeRepo.Count(ctx, video.ID)
		require.NoError(t, countErr)
		require.Equal(t, int64(1), likes)
	})
}
