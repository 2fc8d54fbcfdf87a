// This package implements the command line tool that uses the API.
// It provides an easy and reliable interface to quickly render an image from the filesystem as character pixels in
// the terminal, sized to the terminal (or to -w/-h) while keeping the image's aspect ratio.
//
// Pass image paths as arguments, or one path per line on stdin. With -tui the first image is shown full screen and
// re-fitted whenever the terminal is resized.
//
// Settings can also come from CPIXEL_* environment variables or a .env file (see internal/config); flags win.
package main
