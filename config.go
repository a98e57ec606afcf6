package feedsync

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults reproduce the original export job exactly: an unauthenticated
// POST to the public feed endpoint, overwriting one object per run.
const (
	DefaultFeedURL     = "https://www.autocaris.cz/downloadcontent/cars.php"
	DefaultBucket      = "autocaris-data"
	DefaultKey         = "inzeraty/inzeraty_usti.xml"
	DefaultContentType = "application/xml"
)

type Config struct {
	FeedURL      string
	FeedName     string
	FeedPassword string
	FeedID       string

	Bucket      string
	Key         string
	ContentType string

	// Zero disables the client timeout, matching the original job.
	HTTPTimeout time.Duration

	// Listen address for the serve mode.
	ListenAddr string
}

// LoadConfig reads configuration from FEEDSYNC_* environment variables,
// falling back to the fixed defaults above.
func LoadConfig() Config {
	v := viper.New()
	v.SetEnvPrefix("feedsync")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("feed.url", DefaultFeedURL)
	v.SetDefault("feed.name", "")
	v.SetDefault("feed.password", "")
	v.SetDefault("feed.id", "")
	v.SetDefault("s3.bucket", DefaultBucket)
	v.SetDefault("s3.key", DefaultKey)
	v.SetDefault("s3.content_type", DefaultContentType)
	v.SetDefault("http.timeout", time.Duration(0))
	v.SetDefault("listen.addr", ":8080")

	return Config{
		FeedURL:      v.GetString("feed.url"),
		FeedName:     v.GetString("feed.name"),
		FeedPassword: v.GetString("feed.password"),
		FeedID:       v.GetString("feed.id"),
		Bucket:       v.GetString("s3.bucket"),
		Key:          v.GetString("s3.key"),
		ContentType:  v.GetString("s3.content_type"),
		HTTPTimeout:  v.GetDuration("http.timeout"),
		ListenAddr:   v.GetString("listen.addr"),
	}
}
