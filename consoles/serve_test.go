package consoles

import (
	"bufio"
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intcode"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/modes"
)

func TestServe(t *testing.T) {
	dscope.New(new(logs.Module), modes.ForTest(t)).Call(func(
		logger logs.Logger,
	) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatal(err)
		}
		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error, 1)
		go func() {
			done <- Serve(ctx, ln, ServeOptions{
				Machine:  intcode.New(echoProgram),
				ASCII:    true,
				MaxConns: 2,
				Logger:   logger,
			})
		}()

		for _, word := range []string{"hello", "world"} {
			conn, err := net.Dial("tcp", ln.Addr().String())
			if err != nil {
				t.Fatal(err)
			}
			if _, err := conn.Write([]byte(word + "\n")); err != nil {
				t.Fatal(err)
			}
			line, err := bufio.NewReader(conn).ReadString('\n')
			if err != nil {
				t.Fatal(err)
			}
			if line != word+"\n" {
				t.Fatalf("got %q", line)
			}
			conn.Close()
		}

		cancel()
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	})
}

// fails every Accept after the first
type flakyListener struct {
	net.Listener
	accepted bool
}

var errAccept = errors.New("accept failed")

func (f *flakyListener) Accept() (net.Conn, error) {
	if f.accepted {
		return nil, errAccept
	}
	f.accepted = true
	return f.Listener.Accept()
}

func TestServe_AcceptErrorClosesConns(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	client, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	done := make(chan error, 1)
	go func() {
		done <- Serve(t.Context(), &flakyListener{Listener: ln}, ServeOptions{
			Machine: intcode.New(echoProgram),
			ASCII:   true,
		})
	}()

	select {
	case err := <-done:
		if !errors.Is(err, errAccept) {
			t.Fatalf("got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve blocked on an open connection")
	}
}
