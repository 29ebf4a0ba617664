package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"010-1234-5678":   "01012345678",
		"010 1234 5678":   "01012345678",
		"011-123-4567":    "0111234567",
		"(010) 1234-5678": "01012345678",
	}

	for input, expected := range cases {
		phone, err := NormalizePhone(input)
		assert.NoError(t, err, input)
		assert.Equal(t, expected, phone, input)
	}

	for _, input := range []string{"", "010-12", "02-1234-5678", "010-1234-56789", "phone"} {
		_, err := NormalizePhone(input)
		assert.Equal(t, ErrInvalidPhone, err, input)
	}
}

func TestPassword(t *testing.T) {
	_, err := HashPassword("12345")
	assert.Equal(t, ErrPasswordTooShort, err)

	hash, err := HashPassword("123456")
	assert.NoError(t, err)
	assert.NotEqual(t, "123456", hash)
	assert.True(t, CheckPassword(hash, "123456"))
	assert.False(t, CheckPassword(hash, "654321"))
}

func TestLocalize(t *testing.T) {
	assert.Equal(t, "fallback", Localize("ko", "error_missing", "fallback"))

	bundle.MustParseMessageFileBytes([]byte(`error_test: "테스트"`), "ko.yaml")
	defer func() { bundle = newBundle() }()

	assert.Equal(t, "테스트", Localize("ko-KR,ko;q=0.9", "error_test", "test"))
	assert.Equal(t, "test", Localize("en-US", "error_test", "test"))
}
