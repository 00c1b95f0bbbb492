package crypto

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sealed-table/models"
)

type countingService struct {
	EnvelopeService
	mu     sync.Mutex
	derive int
}

func (c *countingService) DeriveKey(password, salt []byte, iterations int) (models.DerivedKey, error) {
	c.mu.Lock()
	c.derive++
	c.mu.Unlock()
	return c.EnvelopeService.DeriveKey(password, salt, iterations)
}

func TestKeyCache_Get(t *testing.T) {
	svc := &countingService{EnvelopeService: NewEnvelopeService()}
	cache := NewKeyCache(svc, &sync.Mutex{})
	salt := bytes.Repeat([]byte{3}, 16)

	first, err := cache.Get(testPassword, salt, 1000)
	require.NoError(t, err)
	second, err := cache.Get(testPassword, salt, 1000)
	require.NoError(t, err)

	assert.Equal(t, first.Key, second.Key)
	assert.Equal(t, 1, svc.derive)
	assert.Equal(t, 1, cache.Len())

	_, err = cache.Get(testPassword, salt, 1001)
	require.NoError(t, err)
	_, err = cache.Get([]byte("other"), salt, 1000)
	require.NoError(t, err)
	assert.Equal(t, 3, svc.derive)
	assert.Equal(t, 3, cache.Len())
}

func TestKeyCache_ErrorNotCached(t *testing.T) {
	cache := NewKeyCache(NewEnvelopeService(), nil)

	_, err := cache.Get(testPassword, []byte{1}, 1000)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, cache.Len())
}

func TestKeyCache_Purge(t *testing.T) {
	cache := NewKeyCache(NewEnvelopeService(), nil)
	salt := bytes.Repeat([]byte{4}, 16)

	key, err := cache.Get(testPassword, salt, 1000)
	require.NoError(t, err)

	cache.Purge()

	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, make([]byte, KeySize), key.Key)
}

func TestKeyCache_Concurrent(t *testing.T) {
	svc := NewEnvelopeService()
	cache := NewKeyCache(svc, &sync.Mutex{})
	salt := bytes.Repeat([]byte{5}, 16)

	want, err := svc.DeriveKey(testPassword, salt, 1000)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]byte, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k, err := cache.Get(testPassword, salt, 1000)
			if err == nil {
				results[i] = k.Key
			}
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want.Key, got)
	}
	assert.Equal(t, 1, cache.Len())
}
