// Package render regenerates the schedule page from a normalized event list.
//
// The page is treated as its own template: rendering locates the
// competitions container in the current index.html, replaces its contents
// with freshly rendered event cards, and patches the inline script's event
// count. ExtractTemplates runs the transformation in reverse to produce
// reusable placeholder templates from a populated page.
package render
