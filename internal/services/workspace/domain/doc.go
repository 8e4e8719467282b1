// Package domain defines the project workspace records edited by the
// project manager: project info, work products, risks, and schedule tasks.
//
// Enumerated fields are normalized rather than validated. An unknown value
// falls back to the default a new row would get, and progress percentages are
// clamped to [0,100]. No other field is checked.
package domain
