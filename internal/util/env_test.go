package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	a := assert.New(t)

	a.Equal("fallback", Getenv("SEOTDA_TEST_GETENV", "fallback"))

	defer SetEnv("SEOTDA_TEST_GETENV", "set")()
	a.Equal("set", Getenv("SEOTDA_TEST_GETENV", "fallback"))
}

func TestSetEnv(t *testing.T) {
	a := assert.New(t)
	const key = "SEOTDA_TEST_SETENV"

	_, found := os.LookupEnv(key)
	a.False(found)

	restore1 := SetEnv(key, "bar")
	a.Equal("bar", os.Getenv(key))

	restore2 := SetEnv(key, "bar2")
	a.Equal("bar2", os.Getenv(key))

	restore2()
	a.Equal("bar", os.Getenv(key))

	restore1()
	_, found = os.LookupEnv(key)
	a.False(found)
}
