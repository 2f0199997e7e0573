package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrRuntimeNotConfigured  = errors.New("bundler runtime address is not configured")
)
