package xmpp

import (
	"crypto/tls"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-xmpp"
	log "github.com/sirupsen/logrus"
)

// ErrMissingConfig is returned by Send when the account or the recipient is unknown.
var ErrMissingConfig = errors.New("missing xmpp config")

type (
	Config struct {
		Host     string
		Jid      string
		Password string
		To       string
	}

	Xmpp struct {
		Config Config
	}
)

func serverName(jid string) string {
	parts := strings.SplitN(jid, "@", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.SplitN(parts[1], "/", 2)[0]
}

// Enabled reports whether messages can be sent.
func (x Xmpp) Enabled() bool {
	return len(x.Config.Jid) > 0 && len(x.Config.Password) > 0 && len(x.Config.To) > 0
}

func (x Xmpp) options() (xmpp.Options, error) {
	if !x.Enabled() {
		return xmpp.Options{}, ErrMissingConfig
	}

	host := x.Config.Host
	if len(host) == 0 {
		host = serverName(x.Config.Jid)
	}
	if len(host) == 0 {
		return xmpp.Options{}, fmt.Errorf("%w: no host for jid %q", ErrMissingConfig, x.Config.Jid)
	}

	return xmpp.Options{
		Host:          host,
		User:          x.Config.Jid,
		Password:      x.Config.Password,
		NoTLS:         true,
		StartTLS:      true,
		Debug:         false,
		Session:       false,
		Status:        "xa",
		StatusMessage: "Plotting great circles",
		TLSConfig: &tls.Config{
			InsecureSkipVerify: true,
		},
	}, nil
}

// Send chats message to the configured recipient.
func (x Xmpp) Send(message string) error {
	options, err := x.options()
	if err != nil {
		log.WithError(err).Warn("Xmpp message not sent")
		return err
	}

	l := log.WithFields(log.Fields{"host": options.Host, "to": x.Config.To})

	l.Debug("Create xmpp client")
	talk, err := options.NewClient()
	if err != nil {
		l.WithError(err).Error("Xmpp connection failed")
		return fmt.Errorf("xmpp connect %s: %w", options.Host, err)
	}
	defer talk.Close()

	l.Debug("Send xmpp message")
	if _, err := talk.Send(xmpp.Chat{Remote: x.Config.To, Type: "chat", Text: message}); err != nil {
		l.WithError(err).Error("Xmpp send failed")
		return fmt.Errorf("xmpp send: %w", err)
	}

	return nil
}
