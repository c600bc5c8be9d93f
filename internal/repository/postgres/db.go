package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"

	"fooddonation/internal/domain"
)

// Options tunes the connection pool.
type Options struct {
	MaxOpenConns   int
	ConnectTimeout time.Duration
	IdleTimeout    time.Duration
}

// Open returns a *sql.DB for dsn. It does not contact the server; use Ping for that.
func Open(dsn string, opts Options) (*sql.DB, error) {
	db, err := sql.Open("postgres", withConnectTimeout(dsn, opts.ConnectTimeout))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
		db.SetMaxIdleConns(opts.MaxOpenConns)
	}
	if opts.IdleTimeout > 0 {
		db.SetConnMaxIdleTime(opts.IdleTimeout)
	}
	return db, nil
}

// Ping checks that the database answers within timeout.
func Ping(ctx context.Context, db *sql.DB, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return storeErr(db.PingContext(ctx))
}

// withConnectTimeout adds lib/pq's connect_timeout parameter unless the DSN already sets one.
// Both URL and key=value DSNs are supported.
func withConnectTimeout(dsn string, timeout time.Duration) string {
	if timeout <= 0 || strings.Contains(dsn, "connect_timeout") {
		return dsn
	}
	secs := strconv.Itoa(int(timeout.Round(time.Second) / time.Second))
	if strings.Contains(dsn, "://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return dsn
		}
		q := u.Query()
		q.Set("connect_timeout", secs)
		u.RawQuery = q.Encode()
		return u.String()
	}
	return strings.TrimSpace(dsn + " connect_timeout=" + secs)
}

// storeErr marks connection-level failures with domain.ErrStoreUnavailable.
// Query errors are returned unchanged.
func storeErr(err error) error {
	if err == nil || !isConnectionError(err) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var perr *pq.Error
	if errors.As(err, &perr) {
		// Class 08: connection exception. 57P03: cannot_connect_now.
		return perr.Code.Class() == "08" || perr.Code == "57P03"
	}
	return false
}
