package app

import (
	"os"
	"strconv"
	"sync"
)

// TestModeEnv names the variable that makes cmd/shop exit before touching
// any store.
const TestModeEnv = "SHOP_TEST_MODE"

var testMode = sync.OnceValue(func() bool {
	return parseTestMode(os.Getenv(TestModeEnv))
})

// InTestMode reports whether the application should skip runtime side effects.
func InTestMode() bool {
	return testMode()
}

func parseTestMode(raw string) bool {
	on, err := strconv.ParseBool(raw)
	return err == nil && on
}
