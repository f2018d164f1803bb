// Package dailystoic extracts a single day's entry from the Daily Stoic
// page, a long and loosely structured plain-text document, splits it into
// its semantic fields (date, title, quote, attribution, explanation), and
// repairs OCR and line-wrapping artifacts in the free-text fields via an
// external correction service.
//
// This package contains domain types, pure extraction algorithms, and
// capability interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., http/, gemini/, openrouter/).
package dailystoic
