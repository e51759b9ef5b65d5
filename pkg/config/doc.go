// Package config loads eolmix settings.
//
// Sources are layered, later ones winning:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the first of ./eolmix.toml, ./.eolmix.toml and
//     $XDG_CONFIG_HOME/eolmix/config.toml that exists, or an explicit path
//  3. EOLMIX_<SECTION>_<KEY> environment variables, e.g. EOLMIX_OUTPUT_DIR
//
// With no user file and no environment the defaults reproduce the plain
// generator: fixtures go to the current directory.
package config
