// Package chromepdf converts HTML to PDF by delegating to the external
// chrome-pdf executable, which drives a headless Chromium.
//
// The package itself renders nothing. An [Invoker] resolves the executable
// for the current platform, passes the HTML and an output target as
// arguments, and relays the exit status and output:
//
//	inv, err := chromepdf.NewInvoker(chromepdf.WithRoot("/opt/chromepdf"))
//	if err != nil {
//	    log.Fatal(err) // e.g. ErrUnsupportedPlatform
//	}
//
//	msg, err := inv.ConvertToFile(ctx, "<h1>Hello</h1>", "hello.pdf")
//	b64, err := inv.ConvertToBase64(ctx, "<h1>Hello</h1>")
//
// Conversions can also be started without blocking. Each one owns a single
// child process and reports its outcome exactly once:
//
//	conv := inv.StartBase64(ctx, html)
//	select {
//	case o := <-conv.Done():
//	    // o.Value or o.Err
//	case <-time.After(time.Minute):
//	}
//
// The argument vector is [html, output] in file mode and [html, "--base64"]
// in Base64 mode. With [WithBundledBrowser] the platform's bundled Chromium
// path is appended. Exit status 0 means success; anything else is reported
// as a [*GenerationError] carrying the process's stderr.
//
// No timeout is applied. Pass a context with a deadline to bound a
// conversion; cancelling it kills the child and, on Unix, its process group.
//
// Base64 output can be decoded into a [Result]:
//
//	res, err := chromepdf.DecodeBase64(b64)
//	res.WriteToFile("out.pdf", 0o644)
package chromepdf
