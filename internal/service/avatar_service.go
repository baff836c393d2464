package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/rs/zerolog"

	"peerskill/api/internal/avatar"
	"peerskill/api/internal/ids"
	"peerskill/api/internal/models"
	"peerskill/api/internal/storage"
)

const maxAvatarBytes = 5 << 20 // 5 MiB

type AvatarService struct {
	users UserDirectory
	store *storage.ObjectStore
	log   zerolog.Logger
}

func NewAvatarService(users UserDirectory, store *storage.ObjectStore, log zerolog.Logger) *AvatarService {
	return &AvatarService{
		users: users,
		store: store,
		log:   log,
	}
}

// Upload sniffs the file, stores it under the user's prefix and persists the
// resulting URL on the profile.
func (s *AvatarService) Upload(ctx context.Context, user models.User, file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size <= 0 || header.Size > maxAvatarBytes {
		return "", fmt.Errorf("%w: avatar must be between 1 byte and %d bytes", ErrInvalidInput, maxAvatarBytes)
	}

	result, head, err := avatar.Detect(file)
	if err != nil {
		if errors.Is(err, avatar.ErrUnknownType) {
			return "", ErrUnsupportedAvatar
		}
		return "", err
	}

	objectKey := fmt.Sprintf("%s/%s.%s", user.ID, ids.New(), result.Ext)
	body := io.MultiReader(bytes.NewReader(head), file)

	if err := s.store.PutAvatar(ctx, objectKey, result.MIME, body, header.Size); err != nil {
		return "", err
	}

	url := s.store.AvatarURL(objectKey)
	if err := s.users.SetAvatarURL(ctx, user.ID, url); err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", user.ID).Str("object_key", objectKey).Msg("avatar updated")
	return url, nil
}
