package assets

import "errors"

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrNoSource      = errors.New("asset cache has no source")
)
