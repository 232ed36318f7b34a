// Package output renders reports into companion formats: Markdown, xlsx and JSON.
package output
