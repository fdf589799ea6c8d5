// Package render is the HTTP preview service for Liquid filters.
//
// Theme editors post an input value with either a single filter, a pipeline
// expression or a named preset and get the rendered string back:
//
//	POST /filters/truncate   {"input": "Hello World", "args": [8]}
//	POST /render             {"input": "<p>Hi</p>", "pipeline": "strip_html | truncate: 20"}
//	POST /render             {"input": "<p>Hi</p>", "preset": "card_title"}
//
// Responses use the handler package JSON envelope. Presets are loaded once at
// startup from the YAML file named by RENDER_PRESETS_FILE.
package render
