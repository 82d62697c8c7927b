// Package utils provides small conversion helpers shared by the loaders, such as
// parsing the string-typed counts used by collection exports.
package utils
