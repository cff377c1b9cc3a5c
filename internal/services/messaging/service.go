package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/KirkDiggler/minimposter/internal/random"
	"github.com/KirkDiggler/minimposter/internal/services/room"
)

// service implements the Service interface
type service struct {
	language models.Language
	random   random.Source
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		config = &ServiceConfig{}
	}

	language := config.Language
	if language == "" {
		language = models.LanguageArabic
	}
	if !language.IsValid() {
		return nil, fmt.Errorf("unsupported language %q", language)
	}

	src := config.Random
	if src == nil {
		src = random.New(nil)
	}

	return &service{
		language: language,
		random:   src,
	}, nil
}

func (s *service) pick(variants []text) string {
	return variants[s.random.Intn(len(variants))].in(s.language)
}

// GetPhaseMessage returns the title and a line of flavour for a phase
func (s *service) GetPhaseMessage(ctx context.Context, input *GetPhaseMessageInput) (*GetPhaseMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	title, ok := phaseTitles[input.Phase]
	if !ok {
		return nil, fmt.Errorf("unknown phase %q", input.Phase)
	}

	message := s.pick(phaseMessages[input.Phase])
	if input.Phase == models.PhaseDiscussion && input.SecondsLeft > 0 {
		message += "\n" + fmt.Sprintf(timeLeftText.in(s.language), input.SecondsLeft)
	}

	return &GetPhaseMessageOutput{
		Title:   title.in(s.language),
		Message: message,
	}, nil
}

// GetRoleMessage tells a player what they are; impostors only learn the category
func (s *service) GetRoleMessage(ctx context.Context, input *GetRoleMessageInput) (*GetRoleMessageOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.New("input and player cannot be nil")
	}

	p := input.Player
	var message string
	switch {
	case p.IsJudge && input.SecretWord != "":
		message = fmt.Sprintf(judgeRoleText.in(s.language), input.SecretWord)
	case p.IsJudge:
		message = judgeWaitText.in(s.language)
	case p.IsImposter:
		message = fmt.Sprintf(s.pick(imposterRoleText), input.CategoryName)
	case p.Word != nil:
		message = fmt.Sprintf(citizenRoleText.in(s.language), *p.Word, input.CategoryName)
	default:
		message = noRoleText.in(s.language)
	}

	return &GetRoleMessageOutput{Message: message}, nil
}

// GetResultMessage announces the winner, who was voted out and who the impostors were
func (s *service) GetResultMessage(ctx context.Context, input *GetResultMessageInput) (*GetResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var title string
	switch input.Winner {
	case models.WinnerPlayers:
		title = playersWinTitle.in(s.language)
	case models.WinnerImposters:
		title = impostersWin.in(s.language)
	default:
		return nil, fmt.Errorf("unknown winner %q", input.Winner)
	}

	sep := listSeparator.in(s.language)
	var message strings.Builder
	if len(input.VotedOutNames) == 0 {
		message.WriteString(noVotesText.in(s.language))
	} else {
		message.WriteString(fmt.Sprintf(votedOutText.in(s.language), strings.Join(input.VotedOutNames, sep)))
	}
	if len(input.ImposterNames) > 0 {
		message.WriteString("\n")
		message.WriteString(fmt.Sprintf(impostersText.in(s.language), strings.Join(input.ImposterNames, sep)))
	}

	return &GetResultMessageOutput{
		Title:   title,
		Message: message.String(),
	}, nil
}

// GetErrorMessage maps room errors to friendly text; anything else gets a generic line
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var roomErr room.RoomError
	if errors.As(input.Err, &roomErr) {
		if t, ok := errorTexts[roomErr]; ok {
			return &GetErrorMessageOutput{Message: t.in(s.language)}, nil
		}
	}

	return &GetErrorMessageOutput{Message: unknownError.in(s.language)}, nil
}
