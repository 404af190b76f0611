package guard

import (
	"os"
	"sync"
)

var once sync.Once

func init() {
	once.Do(func() {
		if os.Getenv("TILBUD_TEST_MODE") == "" {
			_ = os.Setenv("TILBUD_TEST_MODE", "1")
		}
	})
}
