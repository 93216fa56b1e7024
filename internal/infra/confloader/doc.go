// Package confloader provides configuration loading for simianauth.
//
// It wraps koanf and merges sources in priority order (highest first):
//
//  1. Command-line flags, applied with LoadMap
//  2. Environment variables (SIMIANAUTH_SECTION_KEY)
//  3. The YAML configuration file
//  4. Defaults already present in the target struct
package confloader
