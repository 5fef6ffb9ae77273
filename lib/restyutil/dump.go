package restyutil

import (
	"fmt"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

type Output interface {
	Write(id string, contents string)
}

// Dump writes a transcript of every response received by client to out. The
// files are named by a per-client counter so they sort in request order.
func Dump(client *resty.Client, out Output) {
	if out == nil {
		return
	}
	var counter uint64
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		id := atomic.AddUint64(&counter, 1)
		out.Write(fmt.Sprintf("%04d.txt", id), FormatHttpMessage(res))
		return nil
	})
}
