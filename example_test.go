package chromepdf_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/arezlabs/chromepdf"
)

func Example() {
	inv, err := chromepdf.NewInvoker(chromepdf.WithRoot("/opt/chromepdf"))
	if err != nil {
		log.Fatal(err)
	}

	msg, err := inv.ConvertToFile(context.Background(), "<h1>Hello World</h1>", "/tmp/hello.pdf")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(msg)
}

func Example_base64() {
	inv, err := chromepdf.NewInvoker(
		chromepdf.WithRoot("/opt/chromepdf"),
		chromepdf.WithBundledBrowser(),
	)
	if err != nil {
		log.Fatal(err)
	}

	// The invoker enforces no timeout; bound the conversion from outside.
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	text, err := inv.ConvertToBase64(ctx, "<h1>Hello World</h1>")
	if err != nil {
		log.Fatal(err)
	}
	res, err := chromepdf.DecodeBase64(text)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated PDF: %d bytes\n", res.Len())
}

func Example_callback() {
	inv, err := chromepdf.NewInvoker(chromepdf.WithRoot("/opt/chromepdf"))
	if err != nil {
		log.Fatal(err)
	}

	done := make(chan struct{})
	inv.StartFile(context.Background(), "report.html", "/tmp/report.pdf").OnDone(func(msg string, err error) {
		defer close(done)
		if err != nil {
			log.Print(err)
			return
		}
		fmt.Println(msg)
	})
	<-done
}
