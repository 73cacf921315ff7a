package cleantext_test

import (
	"context"
	"testing"

	cleantext "github.com/Mjeezuz/clean-text-extractor"
	"github.com/Mjeezuz/clean-text-extractor/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Text(t *testing.T) {
	t.Parallel()

	t.Run("fetches, extracts and formats", func(t *testing.T) {
		t.Parallel()

		var fetchedURL string
		svc := &cleantext.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					fetchedURL = url
					return "<html><body><p>hi</p></body></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(pageURL, rawHTML string) (*cleantext.Result, error) {
					assert.Equal(t, "https://x.test/page", pageURL)
					assert.Contains(t, rawHTML, "<p>hi</p>")
					return &cleantext.Result{
						Meta: cleantext.Metadata{Path: "/page"},
						Body: "hi",
					}, nil
				},
			},
		}

		got, err := svc.Text(context.Background(), "https://x.test/page")

		require.NoError(t, err)
		assert.Equal(t, "https://x.test/page", fetchedURL)
		assert.Equal(t, "#URL_PATH: /page\n\nhi", got)
	})

	t.Run("propagates fetch errors unmodified", func(t *testing.T) {
		t.Parallel()

		fetchErr := cleantext.Errorf(cleantext.ENETWORK, "no route to host")
		svc := &cleantext.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "", fetchErr
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(pageURL, rawHTML string) (*cleantext.Result, error) {
					t.Fatal("extractor must not run after a fetch failure")
					return nil, nil
				},
			},
		}

		_, err := svc.Text(context.Background(), "https://x.test")

		require.Error(t, err)
		assert.Equal(t, fetchErr, err)
	})
}
