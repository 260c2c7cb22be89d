/*
Package cfile reads and writes the generated C source file that carries the
logo image data and its lv_img_dsc_t descriptor.

The generated file holds a single uint8_t array; for indexed images the
palette bytes followed by the packed indices, otherwise the raw payload.
The descriptor names the format tag, dimensions, payload size and the array.
Earlier revisions of the firmware stored true-color logos as a uint16_t
array of RGB565 values; the reader accepts both array forms so those files
can still be re-compressed.
*/
package cfile
