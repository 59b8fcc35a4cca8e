package profile

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"

	"tableflip.dev/jot/pkg/printers"
	"tableflip.dev/jot/pkg/store"
)

// Profile reads an image file and stores it as the profile picture, encoded
// as a data URI so the slot stays a self-contained blob.
type Profile struct {
	Path string

	Persistence store.Persistence
}

func (n *Profile) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set profile picture, no persistence")
	}

	data, err := os.ReadFile(n.Path)
	if err != nil {
		return fmt.Errorf("profile: read %s: %w", n.Path, err)
	}

	mime := http.DetectContentType(data)
	uri := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))

	if err := n.Persistence.WriteProfilePicture(uri); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Success("Profile picture updated!")
	return nil
}
