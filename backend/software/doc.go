// Package software implements uidriver.Renderer on an in-memory RGBA
// framebuffer.
//
// Every operation runs on the CPU and writes premultiplied pixels into an
// *image.RGBA that the host can read back with Image or SavePNG. Its
// output is deterministic, so it serves as the reference backend in tests.
//
// Importing the package registers it as "software" with the backend
// registry.
package software
