// Package types provides type definitions for structured data used throughout the homepage builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// SiteConfig holds the blocks of data/config.yaml. The blocks are passed to the
// template untouched.
type SiteConfig struct {
	Info       map[string]any `yaml:"info" json:"info" validate:"required"`
	Bio        any            `yaml:"bio" json:"bio" validate:"required"`
	Education  any            `yaml:"education" json:"education" validate:"required"`
	Activities []any          `yaml:"activities,omitempty" json:"activities,omitempty"`
}

// Validate checks the required blocks are present.
func (c *SiteConfig) Validate() error {
	return validator.New().Struct(c)
}

// ActivitiesOrEmpty returns the activities block, or an empty slice when the
// config does not define one.
func (c *SiteConfig) ActivitiesOrEmpty() []any {
	if c.Activities == nil {
		return []any{}
	}
	return c.Activities
}
