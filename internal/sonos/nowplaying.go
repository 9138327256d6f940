package sonos

import "context"

// NowPlaying resolves what the speakers are doing right now. Each step feeds
// the next: refresh token, household, groups, metadata, transport status.
// Discovery coming up empty (no households, no groups) is a quiet
// not-playing answer; a failed step is an error, except transport status
// which degrades to an empty status.
func (c *Client) NowPlaying(ctx context.Context) (*NowPlaying, error) {
	tokens, err := c.RefreshAccessToken(ctx)
	if err != nil {
		return nil, err
	}
	token := tokens.AccessToken

	householdID := c.creds.HouseholdID
	if householdID == "" {
		var hh householdsResponse
		if err := c.controlGet(ctx, token, "/households", &hh); err != nil {
			return nil, err
		}
		if len(hh.Households) == 0 {
			return &NowPlaying{Playing: false}, nil
		}
		householdID = hh.Households[0].ID
	}

	var gr groupsResponse
	if err := c.controlGet(ctx, token, "/households/"+householdID+"/groups", &gr); err != nil {
		return nil, err
	}
	target := pickGroup(gr.Groups, c.creds.GroupID)
	if target == nil {
		return &NowPlaying{Playing: false}, nil
	}

	meta, err := c.fetchMetadata(ctx, token, target)
	if err != nil {
		return nil, err
	}

	// A failed transport-status call degrades to an empty status rather
	// than trusting the group's cached playbackState.
	var status playbackStatus
	if err := c.controlGet(ctx, token, "/groups/"+target.ID+"/playback", &status); err != nil {
		status = playbackStatus{}
	}

	return compose(target, meta, status), nil
}

// fetchMetadata asks the group for playback metadata, falling back to the
// group's first player when the group-level call fails. A failure on the
// fallback too fails the whole lookup.
func (c *Client) fetchMetadata(ctx context.Context, token string, target *group) (*playbackMetadata, error) {
	var meta playbackMetadata
	groupErr := c.controlGet(ctx, token, "/groups/"+target.ID+"/playbackMetadata", &meta)
	if groupErr == nil {
		return &meta, nil
	}
	if len(target.PlayerIDs) == 0 {
		return nil, groupErr
	}
	var playerMeta playbackMetadata
	if err := c.controlGet(ctx, token, "/players/"+target.PlayerIDs[0]+"/playback/metadata", &playerMeta); err != nil {
		return nil, err
	}
	return &playerMeta, nil
}

// pickGroup prefers the configured group, then any group actively playing,
// then the first group.
func pickGroup(groups []group, preferredID string) *group {
	if len(groups) == 0 {
		return nil
	}
	if preferredID != "" {
		for i := range groups {
			if groups[i].ID == preferredID {
				return &groups[i]
			}
		}
	}
	for i := range groups {
		if groups[i].PlaybackState == statePlaying {
			return &groups[i]
		}
	}
	return &groups[0]
}

func compose(target *group, meta *playbackMetadata, status playbackStatus) *NowPlaying {
	out := &NowPlaying{
		IsPlaying:  status.PlaybackState == statePlaying,
		GroupName:  target.Name,
		PositionMs: status.PositionMillis,
	}

	if meta != nil {
		if item := meta.CurrentItem; item != nil && item.Track != nil {
			out.Title = item.Track.Name
			out.Image = item.Track.ImageURL
			out.DurationMs = item.Track.DurationMillis
			if item.Track.Artist != nil {
				out.Artist = item.Track.Artist.Name
			}
			if item.Track.Album != nil {
				out.Album = item.Track.Album.Name
			}
		}
		if cont := meta.Container; cont != nil {
			if out.Title == "" {
				out.Title = cont.Name
			}
			if out.Image == "" {
				out.Image = cont.ImageURL
			}
		}
	}

	out.Playing = out.Title != "" || out.Artist != ""
	return out
}
