// Package testsupport provides fixtures shared by tests: synthetic JPEG
// files with real EXIF APP1 segments and pre-validated configs.
package testsupport
