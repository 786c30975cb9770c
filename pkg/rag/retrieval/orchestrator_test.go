package retrieval

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"ticketdesk-be/internal/entity"
	"ticketdesk-be/internal/pkg/logger"
	"ticketdesk-be/internal/repository/contract"
	"ticketdesk-be/internal/repository/unitofwork"
	"ticketdesk-be/pkg/chatbot"

	"github.com/google/uuid"
)

type fakeTicketRepo struct {
	contract.TicketRepository

	recent   []*entity.Ticket
	err      error
	gotLimit int
}

func (f *fakeTicketRepo) FindRecent(ctx context.Context, limit int) ([]*entity.Ticket, error) {
	f.gotLimit = limit
	return f.recent, f.err
}

type fakeUow struct {
	ticketRepo contract.TicketRepository
}

func (f *fakeUow) Begin(ctx context.Context) error               { return nil }
func (f *fakeUow) Commit() error                                 { return nil }
func (f *fakeUow) Rollback() error                               { return nil }
func (f *fakeUow) UserRepository() contract.UserRepository       { return nil }
func (f *fakeUow) TicketRepository() contract.TicketRepository   { return f.ticketRepo }
func (f *fakeUow) CommentRepository() contract.CommentRepository { return nil }

type fakeFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// fakeEmbedder ranks the first document closest to any query.
type fakeEmbedder struct {
	batchErr error
	queryErr error
}

func (f *fakeEmbedder) EmbedOne(text string) ([]float32, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return []float32{1, 0}, nil
}

func (f *fakeEmbedder) EmbedMany(texts []string) ([][]float32, error) {
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		if i == 0 {
			out[i] = []float32{1, 0}
		} else {
			out[i] = []float32{0, 1}
		}
	}
	return out, nil
}

type fakeGenerator struct {
	text      string
	err       error
	gotPrompt string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, request *chatbot.GenerateRequest) (*chatbot.GenerateResult, error) {
	if len(request.Contents) > 0 && len(request.Contents[0].Parts) > 0 {
		f.gotPrompt = request.Contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &chatbot.GenerateResult{Text: f.text}, nil
}

func sampleTickets() []*entity.Ticket {
	return []*entity.Ticket{
		{Id: uuid.New(), Title: "VPN drops", Description: "Connection resets hourly", Status: "OPEN", Priority: "HIGH"},
		{Id: uuid.New(), Title: "Keyboard broken", Description: "Spilled coffee", Status: "CLOSED", Priority: "LOW"},
	}
}

func newTestOrchestrator(repo *fakeTicketRepo, embedder *fakeEmbedder, generator *fakeGenerator) *Orchestrator {
	factory := &fakeFactory{uow: &fakeUow{ticketRepo: repo}}
	return NewOrchestrator(factory, embedder, generator, logger.NewNoop())
}

func TestAnswerNoTickets(t *testing.T) {
	repo := &fakeTicketRepo{}
	o := newTestOrchestrator(repo, &fakeEmbedder{}, &fakeGenerator{text: "unreachable"})

	if got := o.Answer(context.Background(), "anything", "en"); got != "No tickets found in the database." {
		t.Errorf("en = %q", got)
	}
	if got := o.Answer(context.Background(), "anything", "ja"); got != "データベースにチケットが見つかりませんでした。" {
		t.Errorf("ja = %q", got)
	}
	if repo.gotLimit != 10 {
		t.Errorf("recent limit = %d, want 10", repo.gotLimit)
	}
}

func TestAnswerRepositoryFailure(t *testing.T) {
	repo := &fakeTicketRepo{err: errors.New("connection refused")}
	o := newTestOrchestrator(repo, &fakeEmbedder{}, &fakeGenerator{text: "unreachable"})

	if got := o.Answer(context.Background(), "anything", "en"); got != "A system error occurred. Please wait a moment and try again." {
		t.Errorf("en = %q", got)
	}
	if got := o.Answer(context.Background(), "anything", "ja"); got != "システムエラーが発生しました。しばらく待ってから再度お試しください。" {
		t.Errorf("ja = %q", got)
	}
}

func TestAnswerBuildsPromptFromTopTicket(t *testing.T) {
	generator := &fakeGenerator{text: "The VPN ticket is still open."}
	o := newTestOrchestrator(&fakeTicketRepo{recent: sampleTickets()}, &fakeEmbedder{}, generator)

	answer := o.Answer(context.Background(), "what is wrong with the vpn?", "en")
	if answer != "The VPN ticket is still open." {
		t.Errorf("answer = %q, want generator text verbatim", answer)
	}

	wantContext := "Title: VPN drops\nDescription: Connection resets hourly\nStatus: OPEN\nPriority: HIGH"
	if !strings.Contains(generator.gotPrompt, wantContext) {
		t.Errorf("prompt missing top ticket context:\n%s", generator.gotPrompt)
	}
	if !strings.Contains(generator.gotPrompt, "Question: what is wrong with the vpn?") {
		t.Errorf("prompt missing question:\n%s", generator.gotPrompt)
	}
	if strings.Contains(generator.gotPrompt, "Keyboard broken") {
		t.Errorf("prompt contains non-top ticket:\n%s", generator.gotPrompt)
	}
	if strings.Contains(generator.gotPrompt, "{context}") || strings.Contains(generator.gotPrompt, "{question}") {
		t.Errorf("placeholders left unsubstituted:\n%s", generator.gotPrompt)
	}
}

func TestAnswerSubstitutionIsLiteral(t *testing.T) {
	generator := &fakeGenerator{text: "ok"}
	o := newTestOrchestrator(&fakeTicketRepo{recent: sampleTickets()}, &fakeEmbedder{}, generator)

	query := `does $1 or (.*) appear in \n any ticket?`
	o.Answer(context.Background(), query, "en")

	if !strings.Contains(generator.gotPrompt, query) {
		t.Errorf("regex metacharacters were not passed through literally:\n%s", generator.gotPrompt)
	}
}

func TestAnswerJapanesePrompt(t *testing.T) {
	generator := &fakeGenerator{text: "ok"}
	o := newTestOrchestrator(&fakeTicketRepo{recent: sampleTickets()}, &fakeEmbedder{}, generator)

	o.Answer(context.Background(), "VPNの調子は？", "ja")
	if !strings.Contains(generator.gotPrompt, "あなたはチケットシステムのAIアシスタントです。") {
		t.Errorf("japanese template not selected:\n%s", generator.gotPrompt)
	}
	if !strings.Contains(generator.gotPrompt, "質問: VPNの調子は？") {
		t.Errorf("question not substituted:\n%s", generator.gotPrompt)
	}
}

func TestAnswerEmptyGeneration(t *testing.T) {
	o := newTestOrchestrator(&fakeTicketRepo{recent: sampleTickets()}, &fakeEmbedder{}, &fakeGenerator{text: ""})

	if got := o.Answer(context.Background(), "anything", "en"); got != "No response generated." {
		t.Errorf("got %q", got)
	}
}

func TestAnswerQuotaExceeded(t *testing.T) {
	quotaErr := fmt.Errorf("%w: status 429", chatbot.ErrQuotaExceeded)

	o := newTestOrchestrator(&fakeTicketRepo{recent: sampleTickets()}, &fakeEmbedder{}, &fakeGenerator{err: quotaErr})
	if got := o.Answer(context.Background(), "anything", "en"); got != "Sorry, the AI service quota has been exceeded. Please wait a moment and try again." {
		t.Errorf("en = %q", got)
	}
	if got := o.Answer(context.Background(), "anything", "ja"); got != "申し訳ありませんが、AIサービスの利用制限（クォータ）に達しました。しばらく待ってから再度お試しください。" {
		t.Errorf("ja = %q", got)
	}
}

func TestAnswerGenericGenerationFailure(t *testing.T) {
	o := newTestOrchestrator(&fakeTicketRepo{recent: sampleTickets()}, &fakeEmbedder{}, &fakeGenerator{err: errors.New("upstream 500")})

	if got := o.Answer(context.Background(), "anything", "en"); got != "A system error occurred. Please wait a moment and try again." {
		t.Errorf("en = %q", got)
	}
}

func TestAnswerEmbeddingQuotaFailure(t *testing.T) {
	embedder := &fakeEmbedder{batchErr: errors.New("embedding request failed: status 429")}
	o := newTestOrchestrator(&fakeTicketRepo{recent: sampleTickets()}, embedder, &fakeGenerator{text: "unreachable"})

	if got := o.Answer(context.Background(), "anything", "ja"); got != "申し訳ありませんが、AIサービスの利用制限（クォータ）に達しました。しばらく待ってから再度お試しください。" {
		t.Errorf("ja = %q", got)
	}
}

func TestAnswerEmbeddingGenericFailure(t *testing.T) {
	embedder := &fakeEmbedder{queryErr: errors.New("dial tcp: connection refused")}
	o := newTestOrchestrator(&fakeTicketRepo{recent: sampleTickets()}, embedder, &fakeGenerator{text: "unreachable"})

	if got := o.Answer(context.Background(), "anything", "en"); got != "A system error occurred. Please wait a moment and try again." {
		t.Errorf("en = %q", got)
	}
}
