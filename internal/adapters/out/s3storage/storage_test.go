package s3storage

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"reco/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPutter struct {
	mock.Mock
	body string
}

func (m *MockPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, _ := io.ReadAll(params.Body)
	m.body = string(data)
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func TestStorage_Upload(t *testing.T) {
	ctx := context.Background()
	putter := &MockPutter{}
	putter.On("PutObject", ctx, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return aws.ToString(in.Bucket) == "reco-files" &&
			aws.ToString(in.ContentType) == "image/jpeg" &&
			aws.ToInt64(in.ContentLength) == 5 &&
			regexp.MustCompile(`^deliveries/abc/[0-9a-z]{12}-foto_1.jpg$`).MatchString(aws.ToString(in.Key))
	})).Return(&s3.PutObjectOutput{}, nil).Once()

	s := newStorage(putter, "reco-files", "https://cdn.reco.example/")
	url, err := s.Upload(ctx, "/deliveries/abc/", "../foto 1.jpg", "image/jpeg", strings.NewReader("bytes"))

	require.NoError(t, err)
	assert.Regexp(t, `^https://cdn\.reco\.example/deliveries/abc/[0-9a-z]{12}-foto_1\.jpg$`, url)
	assert.Equal(t, "bytes", putter.body)
	putter.AssertExpectations(t)
}

func TestStorage_UploadDefaultsContentType(t *testing.T) {
	ctx := context.Background()
	putter := &MockPutter{}
	putter.On("PutObject", ctx, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return aws.ToString(in.ContentType) == "application/octet-stream"
	})).Return(&s3.PutObjectOutput{}, nil).Once()

	_, err := newStorage(putter, "b", "https://x").Upload(ctx, "certificates/1", "cert.pdf", "", strings.NewReader("%PDF"))

	require.NoError(t, err)
	putter.AssertExpectations(t)
}

func TestStorage_UploadRejectsOversizedBody(t *testing.T) {
	putter := &MockPutter{}

	_, err := newStorage(putter, "b", "https://x").Upload(context.Background(), "f", "big.bin", "",
		io.LimitReader(zeroReader{}, MaxObjectSize+1))

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	putter.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything)
}

func TestStorage_UploadWrapsClientError(t *testing.T) {
	ctx := context.Background()
	putter := &MockPutter{}
	cause := errors.New("access denied")
	putter.On("PutObject", ctx, mock.Anything).Return(nil, cause).Once()

	_, err := newStorage(putter, "b", "https://x").Upload(ctx, "f", "a.png", "image/png", strings.NewReader("x"))

	require.ErrorIs(t, err, cause)
}

func TestCleanFilename(t *testing.T) {
	tests := map[string]string{
		"photo.jpg":           "photo.jpg",
		"../../etc/passwd":    "passwd",
		`C:\Users\me\sig.png`: "sig.png",
		"assinatura ção.png":  "assinatura____o.png",
		"":                    "file",
	}
	for in, want := range tests {
		assert.Equal(t, want, cleanFilename(in), in)
	}
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}
