// Command snake-web runs the ebiten frontend. Built with GOOS=js GOARCH=wasm
// it draws into the browser canvas and keeps the high score in localStorage;
// any other build opens a desktop window backed by the stats file.
//
// It is a separate binary from the root command because ebiten and raylib
// each embed their own GLFW and cannot be linked into one executable.
package main
