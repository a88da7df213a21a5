package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/totpgate/totpgate/pkg/qrcode"
	"github.com/totpgate/totpgate/pkg/secret"
)

func TestEnrollmentPNG(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty content", func(t *testing.T) {
		t.Parallel()
		for _, content := range []string{"", "   \t\n"} {
			img, err := qrcode.EnrollmentPNG(content, 256)
			assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
			assert.Nil(t, img)
		}
	})

	t.Run("renders a valid PNG at the requested size", func(t *testing.T) {
		t.Parallel()
		data, err := qrcode.EnrollmentPNG("otpauth://totp/Issuer:guest?secret=JBSWY3DPEHPK3PXP", 400)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 400, img.Bounds().Dx())
		assert.Equal(t, 400, img.Bounds().Dy())
	})

	t.Run("falls back to default size", func(t *testing.T) {
		t.Parallel()
		for _, size := range []int{0, -10} {
			data, err := qrcode.EnrollmentPNG("otpauth://totp/x", size)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, 256, img.Bounds().Dx())
		}
	})
}

func TestEnrollmentDataURI(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty content", func(t *testing.T) {
		t.Parallel()
		uri, err := qrcode.EnrollmentDataURI("", 256)
		assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
		assert.Empty(t, uri)
	})

	t.Run("wraps a decodable PNG", func(t *testing.T) {
		t.Parallel()
		const prefix = "data:image/png;base64,"

		uri, err := qrcode.EnrollmentDataURI("otpauth://totp/x", 256)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(uri, prefix))

		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
		require.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(raw))
		assert.NoError(t, err)
	})
}

func TestEnrollmentURIRendersAsQR(t *testing.T) {
	t.Parallel()

	// The full enrollment flow: secret -> otpauth URI -> scannable QR.
	raw, err := secret.Generate(20)
	require.NoError(t, err)

	uri, err := secret.EnrollmentURI(raw, secret.URIParams{
		AccountName: "guest",
		Issuer:      "OPNsense-CaptivePortal",
		Digits:      6,
		Period:      30 * time.Second,
	})
	require.NoError(t, err)

	data, err := qrcode.EnrollmentPNG(uri, 0)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}
