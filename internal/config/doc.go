// Package config loads the dex configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/dex/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or empty, use defaults
//
// Command-line flags are applied by the caller on top of the loaded Config.
//
// # TOML Format
//
//	api_url          = "https://pokeapi.co/api/v2"
//	artwork_url      = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork"
//	page_size        = 50        # alias: batch_size
//	list_limit       = 100000
//	max_page_buttons = 5
//	scroll_threshold = 4         # rows from the end of the grid
//	default_search   = "ditto"   # "" disables the startup search
//	request_timeout  = "10s"     # unset means no timeout
//	fence_responses  = true
//	infinite         = false
//
// Several keys have accepted aliases. They are resolved in order and the first
// present, valid value wins: page_size, then batch_size.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors and an unparsable or negative
// request_timeout. Missing config files are NOT an error.
package config
