package notify

import (
	"bufio"
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to   string
	body string
}

func newTestSMTPSink(sent *[]sentMail, failWith error) *SMTPSink {
	s := NewSMTPSink(SMTPConfig{Host: "mail.reco.example", Port: 587, From: "noreply@reco.example"})
	s.now = func() time.Time { return occurredAt }
	s.sendMail = func(_ context.Context, to string, msg []byte) error {
		*sent = append(*sent, sentMail{to: to, body: string(msg)})
		return failWith
	}
	return s
}

func TestSMTPSink_Send(t *testing.T) {
	var sent []sentMail
	s := newTestSMTPSink(&sent, nil)

	err := s.Send(context.Background(), Message{Email: "dora@reco.example", Subject: "Delivery completed", Body: "line1\nline2"})

	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "mail.reco.example:587", s.addr)
	assert.Equal(t, "dora@reco.example", sent[0].to)
	assert.True(t, strings.HasPrefix(sent[0].body, "From: noreply@reco.example\r\nTo: dora@reco.example\r\n"))
	assert.Contains(t, sent[0].body, "Subject: Delivery completed\r\n")
	assert.Contains(t, sent[0].body, "\r\n\r\nline1\r\nline2\r\n")
}

func TestSMTPSink_SkipsMessagesWithoutAddress(t *testing.T) {
	var sent []sentMail
	s := newTestSMTPSink(&sent, nil)

	require.NoError(t, s.Send(context.Background(), Message{Subject: "x"}))
	assert.Empty(t, sent)
}

func TestSMTPSink_ReportsFailure(t *testing.T) {
	var sent []sentMail
	s := newTestSMTPSink(&sent, errors.New("connection refused"))

	err := s.Send(context.Background(), Message{Email: "a@b.c"})

	require.Error(t, err)
}

func sinkFor(t *testing.T, ln net.Listener, timeout time.Duration) *SMTPSink {
	t.Helper()
	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	p, err := strconv.Atoi(port)
	require.NoError(t, err)
	return NewSMTPSink(SMTPConfig{Host: host, Port: p, From: "noreply@reco.example", Timeout: timeout})
}

// serveSMTP answers one conversation with canned replies and hands the
// received DATA to got.
func serveSMTP(t *testing.T, ln net.Listener, got chan<- string) {
	t.Helper()
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		r := bufio.NewReader(conn)
		reply := func(line string) { _, _ = conn.Write([]byte(line + "\r\n")) }
		reply("220 localhost ESMTP")
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			cmd := strings.ToUpper(strings.TrimSpace(line))
			switch {
			case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
				reply("250 localhost")
			case strings.HasPrefix(cmd, "MAIL"), strings.HasPrefix(cmd, "RCPT"):
				reply("250 OK")
			case cmd == "DATA":
				reply("354 go ahead")
				var body strings.Builder
				for {
					l, err := r.ReadString('\n')
					if err != nil {
						return
					}
					if l == ".\r\n" {
						break
					}
					body.WriteString(l)
				}
				got <- body.String()
				reply("250 queued")
			case cmd == "QUIT":
				reply("221 bye")
				return
			default:
				reply("502 unknown")
			}
		}
	}()
}

func TestSMTPSink_DeliversOverSMTP(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	got := make(chan string, 1)
	serveSMTP(t, ln, got)

	s := sinkFor(t, ln, 2*time.Second)
	err = s.Send(context.Background(), Message{Email: "dora@reco.example", Subject: "Request approved", Body: "see you"})

	require.NoError(t, err)
	select {
	case body := <-got:
		assert.Contains(t, body, "To: dora@reco.example\r\n")
		assert.Contains(t, body, "see you")
	case <-time.After(time.Second):
		t.Fatal("server received no message")
	}
}

func TestSMTPSink_StalledServerTimesOut(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	// Accept and never greet.
	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			accepted <- conn
		}
	}()
	t.Cleanup(func() {
		select {
		case conn := <-accepted:
			_ = conn.Close()
		default:
		}
	})

	s := sinkFor(t, ln, 200*time.Millisecond)
	start := time.Now()
	err = s.Send(context.Background(), Message{Email: "a@reco.example"})

	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSMTPSink_StalledServerHonorsContext(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			defer conn.Close()
			time.Sleep(3 * time.Second)
		}
	}()

	s := sinkFor(t, ln, time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	err = s.Send(ctx, Message{Email: "a@reco.example"})

	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}
