// Package demoelements provides small, illustrative Element implementations
// registered under the element.Registry: a flat tile-fill floor and a
// scattered-object prop placer. They exist to exercise the core pipeline
// end-to-end in tests and the tiledmaster CLI, not as production content.
package demoelements
