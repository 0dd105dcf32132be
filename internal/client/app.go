package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/bloglist/internal/adapter"
	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/models"
)

// ErrUsage is returned for unknown commands and invalid arguments.
var ErrUsage = errors.New("usage error")

type command struct {
	summary string
	run     func(ctx context.Context, a *App, args []string) error
}

var commands = map[string]command{
	"version":  {"print the server version", runVersion},
	"register": {"create an account: -username -name -password", runRegister},
	"login":    {"log in and print the token: -username -password", runLogin},
	"users":    {"list users with their blogs", runUsers},
	"blogs":    {"list blogs", runBlogs},
	"blog":     {"show one blog: <id>", runBlog},
	"create":   {"add a blog: -title -author -url [-likes]", runCreate},
	"update":   {"replace a blog: <id> -title -author -url [-likes]", runUpdate},
	"delete":   {"remove one of your blogs: <id>", runDelete},
	"stats":    {"show blog statistics", runStats},
	"browse":   {"open the interactive browser", runBrowse},
}

type App struct {
	api     adapter.ServerAdapter
	browser Browser
	out     io.Writer
	logger  *logger.Logger
}

func NewApp(api adapter.ServerAdapter, browser Browser, out io.Writer, logger *logger.Logger) *App {
	return &App{api: api, browser: browser, out: out, logger: logger}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.Usage()
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, ok := commands[args[0]]
	if !ok {
		a.Usage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(ctx, a, args[1:])
}

// Usage prints the command list.
func (a *App) Usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: bloglist <command> [flags]")
	fmt.Fprintln(a.out)
	for _, name := range names {
		fmt.Fprintf(a.out, "  %-9s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(a.out, "\nCLIENT_SERVER_URL, CLIENT_TOKEN and CLIENT_REQUEST_TIMEOUT configure the client.")
}

// ─────────────────────────────────────────────
// flag helpers
// ─────────────────────────────────────────────

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return nil
}

// parseWithID accepts the blog id as the first positional argument; the
// remaining arguments are parsed as flags.
func parseWithID(fs *flag.FlagSet, args []string) (string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", fmt.Errorf("%w: %s needs a blog id", ErrUsage, fs.Name())
	}
	return args[0], parse(fs, args[1:])
}

// blogFlags binds the blog fields. likes stays nil unless -likes is given.
type blogFlags struct {
	title, author, url string
	likes              *int64
}

func bindBlogFlags(fs *flag.FlagSet) *blogFlags {
	bf := &blogFlags{}
	fs.StringVar(&bf.title, "title", "", "blog title")
	fs.StringVar(&bf.author, "author", "", "blog author")
	fs.StringVar(&bf.url, "url", "", "blog url")
	fs.Func("likes", "number of likes", func(s string) error {
		var n int64
		if _, err := fmt.Sscan(s, &n); err != nil {
			return fmt.Errorf("invalid likes %q", s)
		}
		bf.likes = &n
		return nil
	})
	return bf
}

func tokenFlag(fs *flag.FlagSet) *string {
	return fs.String("token", "", "bearer token (overrides CLIENT_TOKEN)")
}

func (a *App) applyToken(token string) {
	if token != "" {
		a.api.SetToken(token)
	}
}

// ─────────────────────────────────────────────
// commands
// ─────────────────────────────────────────────

func runVersion(ctx context.Context, a *App, args []string) error {
	if err := parse(a.newFlagSet("version"), args); err != nil {
		return err
	}

	version, err := a.api.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, version)
	return nil
}

func runRegister(ctx context.Context, a *App, args []string) error {
	fs := a.newFlagSet("register")
	var request models.RegisterUserRequest
	fs.StringVar(&request.Username, "username", "", "login name, at least 3 characters")
	fs.StringVar(&request.Name, "name", "", "display name")
	fs.StringVar(&request.Password, "password", "", "password, at least 3 characters")
	if err := parse(fs, args); err != nil {
		return err
	}

	user, err := a.api.Register(ctx, request)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "registered %s (%s)\n", user.Username, user.ID)
	return nil
}

func runLogin(ctx context.Context, a *App, args []string) error {
	fs := a.newFlagSet("login")
	var request models.LoginRequest
	fs.StringVar(&request.Username, "username", "", "login name")
	fs.StringVar(&request.Password, "password", "", "password")
	if err := parse(fs, args); err != nil {
		return err
	}

	login, err := a.api.Login(ctx, request)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "logged in as %s (%s)\n", login.Username, login.Name)
	fmt.Fprintf(a.out, "export CLIENT_TOKEN=%s\n", login.Token)
	return nil
}

func runUsers(ctx context.Context, a *App, args []string) error {
	if err := parse(a.newFlagSet("users"), args); err != nil {
		return err
	}

	users, err := a.api.ListUsers(ctx)
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, renderUsers(users))
	return nil
}

func runBlogs(ctx context.Context, a *App, args []string) error {
	if err := parse(a.newFlagSet("blogs"), args); err != nil {
		return err
	}

	blogs, err := a.api.ListBlogs(ctx)
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, renderBlogs(blogs))
	return nil
}

func runBlog(ctx context.Context, a *App, args []string) error {
	id, err := parseWithID(a.newFlagSet("blog"), args)
	if err != nil {
		return err
	}

	blog, err := a.api.GetBlog(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderBlog(blog))
	return nil
}

func runCreate(ctx context.Context, a *App, args []string) error {
	fs := a.newFlagSet("create")
	bf := bindBlogFlags(fs)
	token := tokenFlag(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	a.applyToken(*token)

	blog, err := a.api.CreateBlog(ctx, models.CreateBlogRequest{
		Title:  bf.title,
		Author: bf.author,
		URL:    bf.url,
		Likes:  bf.likes,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "created")
	fmt.Fprintln(a.out, renderBlog(blog))
	return nil
}

func runUpdate(ctx context.Context, a *App, args []string) error {
	fs := a.newFlagSet("update")
	bf := bindBlogFlags(fs)
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	blog, err := a.api.UpdateBlog(ctx, id, models.UpdateBlogRequest{
		Title:  bf.title,
		Author: bf.author,
		URL:    bf.url,
		Likes:  bf.likes,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "updated")
	fmt.Fprintln(a.out, renderBlog(blog))
	return nil
}

func runDelete(ctx context.Context, a *App, args []string) error {
	fs := a.newFlagSet("delete")
	token := tokenFlag(fs)
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}
	a.applyToken(*token)

	if err = a.api.DeleteBlog(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "deleted %s\n", id)
	return nil
}

func runStats(ctx context.Context, a *App, args []string) error {
	if err := parse(a.newFlagSet("stats"), args); err != nil {
		return err
	}

	stats, err := a.api.BlogStats(ctx)
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, renderStats(stats))
	return nil
}

func runBrowse(ctx context.Context, a *App, args []string) error {
	fs := a.newFlagSet("browse")
	token := tokenFlag(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	a.applyToken(*token)

	return a.browser.Browse(ctx)
}
