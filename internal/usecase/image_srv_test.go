package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"jua-kazi/internal/dto/request"
	apperrors "jua-kazi/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUploader struct {
	mu        sync.Mutex
	publicIDs []string
	err       error
}

func (f *fakeUploader) Upload(ctx context.Context, file io.Reader, publicID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.mu.Lock()
	f.publicIDs = append(f.publicIDs, publicID)
	f.mu.Unlock()
	return "https://res.cloudinary.com/demo/" + publicID + ".jpg", nil
}

func TestImageServiceDisabled(t *testing.T) {
	svc := NewImageService(nil, zap.NewNop())
	assert.False(t, svc.Enabled())

	dir, _, _ := newTestDirectory(t)
	_, _, err := svc.AttachImage(context.Background(), dir, "id", strings.NewReader("x"))
	require.ErrorIs(t, err, ErrImagesDisabled)
}

func TestAttachImageAppends(t *testing.T) {
	ctx := context.Background()
	dir, _, _ := newTestDirectory(t)

	_, err := dir.CreateAccount(ctx, ashaAccount())
	require.NoError(t, err)
	req := cleaningProfile()
	req.Images = []string{"https://img.example.com/existing.jpg"}
	profile, err := dir.CreateProviderProfile(ctx, req)
	require.NoError(t, err)

	uploader := &fakeUploader{}
	svc := NewImageService(uploader, zap.NewNop())

	updated, url, err := svc.AttachImage(ctx, dir, profile.ID.String(), strings.NewReader("jpeg bytes"))
	require.NoError(t, err)
	require.Len(t, uploader.publicIDs, 1)
	assert.True(t, strings.HasPrefix(uploader.publicIDs[0], profile.ID.String()+"-"))
	assert.Equal(t, []string{"https://img.example.com/existing.jpg", url}, updated.Images)
}

func TestAttachImageConcurrentUploadsKeepEveryURL(t *testing.T) {
	ctx := context.Background()
	dir, _, _ := newTestDirectory(t)

	_, err := dir.CreateAccount(ctx, ashaAccount())
	require.NoError(t, err)
	profile, err := dir.CreateProviderProfile(ctx, cleaningProfile())
	require.NoError(t, err)

	svc := NewImageService(&fakeUploader{}, zap.NewNop())

	const uploads = 8
	urls := make([]string, uploads)
	errs := make([]error, uploads)
	var wg sync.WaitGroup
	for i := 0; i < uploads; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, urls[i], errs[i] = svc.AttachImage(ctx, dir, profile.ID.String(), strings.NewReader("x"))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	listing, err := dir.GetProvider(ctx, profile.ID.String())
	require.NoError(t, err)
	assert.ElementsMatch(t, urls, listing.Images)
}

func TestAttachImageLimit(t *testing.T) {
	ctx := context.Background()
	dir, _, _ := newTestDirectory(t)

	_, err := dir.CreateAccount(ctx, ashaAccount())
	require.NoError(t, err)
	profile, err := dir.CreateProviderProfile(ctx, cleaningProfile())
	require.NoError(t, err)

	for i := 0; i < MaxProviderImages; i++ {
		_, err := dir.AddProviderImage(ctx, profile.ID.String(), "https://img.example.com/"+string(rune('a'+i))+".jpg")
		require.NoError(t, err)
	}

	_, err = dir.AddProviderImage(ctx, profile.ID.String(), "https://img.example.com/extra.jpg")
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAttachImageUploadFailure(t *testing.T) {
	ctx := context.Background()
	dir, _, _ := newTestDirectory(t)

	_, err := dir.CreateAccount(ctx, ashaAccount())
	require.NoError(t, err)
	profile, err := dir.CreateProviderProfile(ctx, cleaningProfile())
	require.NoError(t, err)

	boom := errors.New("cloudinary down")
	svc := NewImageService(&fakeUploader{err: boom}, zap.NewNop())

	_, _, err = svc.AttachImage(ctx, dir, profile.ID.String(), strings.NewReader("x"))
	require.ErrorIs(t, err, boom)

	unchanged, err := dir.GetProvider(ctx, profile.ID.String())
	require.NoError(t, err)
	assert.Empty(t, unchanged.Images)

	_, err = dir.UpdateProviderProfile(ctx, profile.ID.String(), &request.UpdateProfileRequest{Location: ptr("Eldoret")})
	require.NoError(t, err)
}
