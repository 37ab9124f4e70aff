// Package app is the composition root for dex.
//
// Run loads the TOML config, layers command-line overrides on top, builds the
// HTTP client and the catalog controller, resolves the theme from saved
// preferences (or the terminal background when nothing is saved) and hands
// everything to the Bubble Tea UI, which blocks until the user quits.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file present but unreadable or invalid
//   - API url that cannot be parsed
//
// Everything that happens after startup, including failed fetches, is shown
// inline by the UI and never ends the program.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{PageSize: 24}); err != nil {
//		log.Fatal().Err(err).Msg("dex failed")
//	}
package app
