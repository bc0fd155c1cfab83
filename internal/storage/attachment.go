package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// TemporaryTag marks uploads that expire unless an entry claims them.
const TemporaryTag = "expirar"

var ErrReaderNil = errors.New("reader is nil")

// Attachments stores entry attachments. Uploads start as temporary objects and
// become permanent once Confirm is called for them.
type Attachments struct {
	store  Storage
	expiry time.Duration
	logger log.FieldLogger
}

// NewAttachments wraps store. URLs handed out by URL stay valid for expiry.
func NewAttachments(store Storage, expiry time.Duration, logger log.FieldLogger) *Attachments {
	return &Attachments{store: store, expiry: expiry, logger: logger}
}

// SaveTemporary uploads r under a unique name derived from originalFilename and returns that name.
func (a *Attachments) SaveTemporary(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (string, error) {
	if r == nil {
		return "", ErrReaderNil
	}
	name := uuid.NewString() + "_" + sanitizeFilename(originalFilename)

	_, err := a.store.Put(ctx, name, r, PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata:    map[string]string{"original-filename": originalFilename},
		Tags:        map[string]string{TemporaryTag: "true"},
	})
	if err != nil {
		return "", fmt.Errorf("upload attachment: %w", err)
	}
	return name, nil
}

// URL returns a download URL for the attachment.
func (a *Attachments) URL(ctx context.Context, name string) (string, error) {
	return a.store.PresignGet(ctx, name, a.expiry)
}

// Confirm makes a temporary attachment permanent.
func (a *Attachments) Confirm(ctx context.Context, name string) error {
	if err := a.store.RemoveTags(ctx, name); err != nil {
		return fmt.Errorf("confirm attachment %s: %w", name, err)
	}
	return nil
}

// Remove deletes the attachment.
func (a *Attachments) Remove(ctx context.Context, name string) error {
	if err := a.store.Delete(ctx, name); err != nil {
		return fmt.Errorf("remove attachment %s: %w", name, err)
	}
	return nil
}

// Replace moves a record from attachment old to attachment new, either of
// which may be empty. new is confirmed before persist runs and old is removed
// only after persist succeeds. A failed removal leaves a stale object behind
// and is logged, not returned: the record already points at new.
func (a *Attachments) Replace(ctx context.Context, old, new string, persist func() error) error {
	if old == new {
		return persist()
	}
	if new != "" {
		if err := a.Confirm(ctx, new); err != nil {
			return err
		}
	}
	if err := persist(); err != nil {
		return err
	}
	if old != "" {
		if err := a.Remove(ctx, old); err != nil {
			a.logger.WithFields(log.Fields{
				"component": "storage",
				"anexo":     old,
			}).WithError(err).Warn("stale attachment left in storage")
		}
	}
	return nil
}

func sanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "anexo"
	}
	return strings.ReplaceAll(base, " ", "_")
}
