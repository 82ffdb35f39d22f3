package credential

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tmdb-cli/tmdb/filesystem"
)

type scriptedPrompter struct {
	answers  []string
	err      error
	messages []string
}

func (p *scriptedPrompter) Ask(message string) (string, error) {
	p.messages = append(p.messages, message)
	if p.err != nil {
		return "", p.err
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func TestResolve(t *testing.T) {
	Convey("Given no stored credential", t, func() {
		filesystem.SetMemMapFs()
		store := NewStore(testPath)
		prompter := &scriptedPrompter{answers: []string{"  fresh-key \n"}}
		var out bytes.Buffer
		resolver := NewResolver(store, prompter, &out)

		c, err := resolver.Resolve()

		Convey("It prompts once after printing the advisory", func() {
			So(err, ShouldBeNil)
			So(c, ShouldEqual, Credential("fresh-key"))
			So(out.String(), ShouldContainSubstring, "No API key found")
			So(prompter.messages, ShouldResemble, []string{"API Key:"})
		})

		Convey("It stores the answer", func() {
			stored, err := store.Load()
			So(err, ShouldBeNil)
			So(stored.MustGet(), ShouldEqual, Credential("fresh-key"))
		})

		Convey("A second call does not prompt again", func() {
			again, err := resolver.Resolve()
			So(err, ShouldBeNil)
			So(again, ShouldEqual, c)
			So(prompter.messages, ShouldHaveLength, 1)
		})
	})

	Convey("Given a stored credential", t, func() {
		filesystem.SetMemMapFs()
		store := NewStore(testPath)
		So(store.Save("stored-key"), ShouldBeNil)
		prompter := &scriptedPrompter{}
		var out bytes.Buffer

		c, err := NewResolver(store, prompter, &out).Resolve()

		So(err, ShouldBeNil)
		So(c, ShouldEqual, Credential("stored-key"))
		So(prompter.messages, ShouldBeEmpty)
		So(out.Len(), ShouldEqual, 0)
	})

	Convey("Given an empty answer", t, func() {
		filesystem.SetMemMapFs()
		store := NewStore(testPath)
		resolver := NewResolver(store, &scriptedPrompter{answers: []string{"   "}}, &bytes.Buffer{})

		_, err := resolver.Resolve()

		So(errors.Is(err, ErrEmptyCredential), ShouldBeTrue)
		stored, _ := store.Load()
		So(stored.IsAbsent(), ShouldBeTrue)
	})

	Convey("Given a malformed store", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().WriteFile(testPath, []byte("{"), 0o600), ShouldBeNil)
		prompter := &scriptedPrompter{}

		_, err := NewResolver(NewStore(testPath), prompter, &bytes.Buffer{}).Resolve()

		So(errors.Is(err, ErrMalformedStore), ShouldBeTrue)
		So(prompter.messages, ShouldBeEmpty)
	})

	Convey("Given a failing prompt", t, func() {
		filesystem.SetMemMapFs()
		boom := errors.New("interrupt")

		_, err := NewResolver(NewStore(testPath), &scriptedPrompter{err: boom}, &bytes.Buffer{}).Resolve()

		So(errors.Is(err, boom), ShouldBeTrue)
	})
}

func TestReplace(t *testing.T) {
	Convey("Given a stored credential", t, func() {
		filesystem.SetMemMapFs()
		store := NewStore(testPath)
		So(store.Save("old-key"), ShouldBeNil)
		resolver := NewResolver(store, &scriptedPrompter{answers: []string{"new-key"}}, &bytes.Buffer{})

		Convey("Replace prompts and overwrites it", func() {
			c, err := resolver.Replace()
			So(err, ShouldBeNil)
			So(c, ShouldEqual, Credential("new-key"))

			stored, err := store.Load()
			So(err, ShouldBeNil)
			So(stored.MustGet(), ShouldEqual, Credential("new-key"))

			resolved, err := resolver.Resolve()
			So(err, ShouldBeNil)
			So(resolved, ShouldEqual, Credential("new-key"))
		})
	})
}

func TestLinePrompter(t *testing.T) {
	Convey("LinePrompter", t, func() {
		var out bytes.Buffer

		Convey("Reads one line and echoes the message", func() {
			p := NewLinePrompter(strings.NewReader("key-1\nkey-2\n"), &out)
			answer, err := p.Ask("API Key:")
			So(err, ShouldBeNil)
			So(answer, ShouldEqual, "key-1")
			So(out.String(), ShouldEqual, "API Key: ")
		})

		Convey("Accepts a last line without a terminator", func() {
			answer, err := NewLinePrompter(strings.NewReader("key\r"), &out).Ask("API Key:")
			So(err, ShouldBeNil)
			So(answer, ShouldEqual, "key")
		})

		Convey("Fails on closed input", func() {
			_, err := NewLinePrompter(strings.NewReader(""), &out).Ask("API Key:")
			So(err, ShouldNotBeNil)
		})
	})
}
