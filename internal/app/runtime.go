package app

import (
	"os"
	"sync"
)

// InTestMode reports whether the process should skip runtime side effects,
// such as the worker connecting its broker. Controlled by BOSTA_TEST_MODE=1
// and read once per process.
var InTestMode = sync.OnceValue(func() bool {
	return os.Getenv("BOSTA_TEST_MODE") == "1"
})
