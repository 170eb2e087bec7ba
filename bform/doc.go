// Package bform integrates the bmime builder into applications: environment
// based configuration, zap logging, an fx module, and a helper that attaches
// assembled bodies to outbound requests.
//
// Configuration comes from the environment (see [BaseEnvironment]); embed it
// in a custom struct for application-specific additions and parse with
// [ParseEnv]. The [Builders] factory hands out per-request
// [github.com/advdv/bmime.Builder] instances configured from it.
//
// For dependency-injection based applications, [Module] provides all of the
// above to an fx container.
package bform
