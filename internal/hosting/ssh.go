package hosting

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// ErrNoSSHKey is returned when ~/.ssh holds no public key
var ErrNoSSHKey = errors.New("no SSH public key found in ~/.ssh (create one with ssh-keygen -t ed25519)")

// SSHKey is a parsed public key file
type SSHKey struct {
	Path        string
	Type        string
	Fingerprint string
	Comment     string
}

// CheckSSHKeys parses every ~/.ssh/id_*.pub under home
func CheckSSHKeys(home string) ([]SSHKey, error) {
	matches, err := filepath.Glob(filepath.Join(home, ".ssh", "id_*.pub"))
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)

	keys := make([]SSHKey, 0, len(matches))

	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		pub, comment, _, _, err := ssh.ParseAuthorizedKey(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		keys = append(keys, SSHKey{
			Path:        path,
			Type:        pub.Type(),
			Fingerprint: ssh.FingerprintSHA256(pub),
			Comment:     comment,
		})
	}

	if len(keys) == 0 {
		return nil, ErrNoSSHKey
	}

	return keys, nil
}

// sshBinary is replaced in tests
var sshBinary = "ssh"

const authenticatedMarker = "successfully authenticated"

// ConnectivityResult is the outcome of an `ssh -T` probe
type ConnectivityResult struct {
	Host          string
	Authenticated bool
	Output        string
}

// CheckConnectivity runs `ssh -T user@host`. Hosting services close the
// session with a non-zero status after greeting, so the greeting text decides
// success rather than the exit code.
func CheckConnectivity(ctx context.Context, host, user string) (*ConnectivityResult, error) {
	if user == "" {
		user = "git"
	}

	bin, err := exec.LookPath(sshBinary)
	if err != nil {
		return nil, fmt.Errorf("ssh client not found: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin,
		"-T",
		"-o", "BatchMode=yes",
		"-o", "StrictHostKeyChecking=accept-new",
		"-o", "ConnectTimeout=10",
		user+"@"+host,
	)

	out, runErr := cmd.CombinedOutput()
	res := &ConnectivityResult{Host: host, Output: strings.TrimSpace(string(out))}

	if IsAuthenticated(res.Output) {
		res.Authenticated = true
		return res, nil
	}

	if runErr != nil {
		return res, fmt.Errorf("ssh %s@%s: %w: %s", user, host, runErr, res.Output)
	}

	return res, fmt.Errorf("ssh %s@%s: unexpected response: %s", user, host, res.Output)
}

// IsAuthenticated reports whether an ssh greeting confirms the key was accepted
func IsAuthenticated(output string) bool {
	lower := strings.ToLower(output)

	return strings.Contains(lower, authenticatedMarker) || strings.Contains(lower, "welcome to gitea")
}
