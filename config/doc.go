// Package config reads poster settings files and the command-line
// environment.
//
// A settings file is TOML or YAML, chosen by extension:
//
//	arrangement = "side-by-side"
//	background  = "navy"
//	radius      = 60
//	overlap     = 10
//
//	[canvas]
//	width  = 2000
//	height = 1000
//
//	[border]
//	width = 4
//	color = "gold"
//
//	[[panes]]
//	id     = "stars"
//	image  = "stars.png"
//
//	[[panes]]
//	id     = "map"
//	image  = "~/maps/lisbon.jpg"
//	effect = "grayscale"
//
//	[[text]]
//	text   = "Lisbon"
//	size   = 32
//	color  = "white"
//	anchor = "combined"
//
// Relative paths are resolved against the directory of the settings file.
package config
