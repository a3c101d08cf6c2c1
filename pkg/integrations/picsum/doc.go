// Package picsum downloads random photos from Lorem Picsum.
//
// GET /<width>/<height> redirects to a random JPEG of exactly that size.
// [Client.Download] writes the bytes to a local file and hands back a
// [Download] whose Remove method is safe to defer:
//
//	dl, err := client.Download(ctx, 400, 400, "image.png")
//	if err != nil {
//	    return err // nothing was written
//	}
//	defer dl.Remove()
//	img, err := dl.Open()
package picsum
