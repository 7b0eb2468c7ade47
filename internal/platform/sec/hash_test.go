// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantran/mercato/internal/platform/sec"
)

/*
TestHashPassword verifies hashing and verification against the original and a
wrong password.
*/
func TestHashPassword(t *testing.T) {
	hash, err := sec.HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// The hash must never equal the plaintext.
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, sec.CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, sec.CheckPasswordHash("wrong-pass", hash))
}

/*
TestHashPassword_UniqueSalts verifies that hashing the same password twice
yields different hashes (per-hash salt).
*/
func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := sec.HashPassword("s3cret-pass")
	require.NoError(t, err)

	second, err := sec.HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
