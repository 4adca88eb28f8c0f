package toast

import (
	"log"

	"github.com/inkeliz/giohyperlink"
)

// OpenLink returns a Listener that opens uri in the platform browser when
// the toast is tapped.
func OpenLink(uri string) Listener {
	return ListenerFunc(func(c *Config) {
		if err := openURI(uri); err != nil {
			log.Printf("failed opening %q from toast %s: %v", uri, c.ID, err)
		}
	})
}

var openURI = giohyperlink.Open
