package folio

import "github.com/goliatone/go-folio/internal/runtimeconfig"

var (
	ErrSiteNameRequired        = runtimeconfig.ErrSiteNameRequired
	ErrSiteBaseURLRequired     = runtimeconfig.ErrSiteBaseURLRequired
	ErrContentDirRequired      = runtimeconfig.ErrContentDirRequired
	ErrExcerptLengthInvalid    = runtimeconfig.ErrExcerptLengthInvalid
	ErrWordsPerMinuteInvalid   = runtimeconfig.ErrWordsPerMinuteInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrFeedLimitInvalid        = runtimeconfig.ErrFeedLimitInvalid
)

type (
	Config         = runtimeconfig.Config
	SiteConfig     = runtimeconfig.SiteConfig
	ContentConfig  = runtimeconfig.ContentConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	MetaConfig     = runtimeconfig.MetaConfig
	FeedsConfig    = runtimeconfig.FeedsConfig
	ScaffoldConfig = runtimeconfig.ScaffoldConfig
	Features       = runtimeconfig.Features
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
