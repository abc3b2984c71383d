package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"addressbook/config"
	"addressbook/internal/command"
	"addressbook/internal/model"
	"addressbook/internal/model/dto"
	"addressbook/internal/repository"
	pkgerrors "addressbook/pkg/errors"
	"addressbook/pkg/logger"
	"addressbook/pkg/metrics"
	"addressbook/pkg/snowflake"
)

var (
	addressBookService *AddressBookService
	addressBookOnce    sync.Once
)

// AddressBook 全局实例，SAMPLE_DATA_ENABLED 时预先载入示例联系人
func AddressBook() *AddressBookService {
	addressBookOnce.Do(func() {
		var seed []model.Person
		if config.Cfg.SampleDataEnabled {
			seed = repository.SamplePersons()
		}

		book, err := repository.NewAddressBook(seed...)
		if err != nil {
			logger.Logger.Warn("Failed to load sample persons, starting empty", zap.Error(err))
			book, _ = repository.NewAddressBook()
		}
		addressBookService = NewAddressBookService(book)
	})

	return addressBookService
}

// AddressBookService 串行执行命令：同一时间只有一条命令在修改通讯录
type AddressBookService struct {
	mu   sync.Mutex
	book *repository.AddressBook
}

func NewAddressBookService(book *repository.AddressBook) *AddressBookService {
	return &AddressBookService{book: book}
}

// Execute 执行命令并记录日志与指标，返回执行 ID
func (s *AddressBookService) Execute(ctx context.Context, cmd command.Command) (string, command.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.Component("addressbook")

	execID, err := snowflake.ExecutionID()
	if err != nil {
		log.Warn("Failed to generate execution ID", zap.Error(err))
		execID = "exec_unknown"
	}

	start := time.Now()
	result, err := cmd.Execute(s.book)
	duration := time.Since(start).Seconds()

	status := "success"
	if err != nil {
		status = "failed"
	}
	metrics.GetMetrics().RecordCommand(ctx, cmd.Word(), status, duration)

	if err != nil {
		log.Info("Command rejected",
			zap.String("execution_id", execID),
			zap.String("command", cmd.Word()),
			zap.Error(err),
		)
		return execID, command.Result{}, err
	}

	log.Info("Command executed",
		zap.String("execution_id", execID),
		zap.String("command", cmd.Word()),
		zap.Float64("duration_seconds", duration),
	)

	return execID, result, nil
}

// TogglePrivacy 修改展示列表中第 oneBasedIndex 个联系人的字段隐私
func (s *AddressBookService) TogglePrivacy(
	ctx context.Context,
	oneBasedIndex int,
	edit command.PrivacyEdit,
) (string, command.Result, error) {
	index, err := command.NewIndexFromOneBased(oneBasedIndex)
	if err != nil {
		return "", command.Result{}, pkgerrors.InvalidPersonDisplayedIndex
	}

	if !edit.IsAnyFieldSet() {
		return "", command.Result{}, pkgerrors.PrivacyEditEmpty
	}

	om := metrics.GetMetrics()
	for field, value := range map[string]command.OptionalBool{
		"phone":   edit.PrivatePhone(),
		"email":   edit.PrivateEmail(),
		"address": edit.PrivateAddress(),
		"remark":  edit.PrivateRemark(),
	} {
		if private, ok := value.Get(); ok {
			om.RecordPrivacyChange(ctx, field, private)
		}
	}

	return s.Execute(ctx, command.NewTogglePrivacyCommand(index, edit))
}

// ListPersons 按关键字过滤展示列表并返回，关键字为空时展示全部。
// 返回的顺序即 TogglePrivacy 使用的序号。
func (s *AddressBookService) ListPersons(ctx context.Context, keywords []string) []model.Person {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(keywords) == 0 {
		s.book.UpdateFilteredPersonList(repository.ShowAllPersons)
	} else {
		s.book.UpdateFilteredPersonList(repository.NameContainsKeywords(keywords...))
	}

	return s.book.FilteredPersons()
}

func (s *AddressBookService) AddPerson(ctx context.Context, req dto.AddPersonRequest) (model.Person, error) {
	person, err := buildPerson(req)
	if err != nil {
		return model.Person{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.book.AddPerson(person); err != nil {
		return model.Person{}, err
	}

	metrics.GetMetrics().AddPersons(ctx, 1)
	logger.Component("addressbook").Info("Person added",
		zap.String("name", person.Name().String()),
		zap.Int("size", s.book.Size()),
	)

	return person, nil
}

func buildPerson(req dto.AddPersonRequest) (model.Person, error) {
	name, err := model.NewName(strings.TrimSpace(req.Name))
	if err != nil {
		return model.Person{}, err
	}
	phone, err := model.NewPhone(strings.TrimSpace(req.Phone))
	if err != nil {
		return model.Person{}, err
	}
	email, err := model.NewEmail(strings.TrimSpace(req.Email))
	if err != nil {
		return model.Person{}, err
	}
	address, err := model.NewAddress(strings.TrimSpace(req.Address))
	if err != nil {
		return model.Person{}, err
	}
	team, err := model.NewTeamName(strings.TrimSpace(req.TeamName))
	if err != nil {
		return model.Person{}, err
	}

	tags := make([]model.Tag, 0, len(req.Tags))
	for _, raw := range req.Tags {
		tag, err := model.NewTag(strings.TrimSpace(raw))
		if err != nil {
			return model.Person{}, fmt.Errorf("tag %q: %w", raw, err)
		}
		tags = append(tags, tag)
	}

	return model.NewPerson(name, phone, email, address, model.NewRemark(strings.TrimSpace(req.Remark)), team, tags), nil
}
