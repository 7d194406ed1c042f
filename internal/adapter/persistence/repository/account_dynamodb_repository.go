package repository

import (
	"context"
	"time"

	"orcamentix/internal/domain/entities"
	"orcamentix/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultAccountTableName = "account"

// Fixed key: the app manages exactly one local account record.
const accountRecordID = "account"

type accountItem struct {
	ID         string                `dynamodbav:"id"`
	Nome       string                `dynamodbav:"nome"`
	Email      string                `dynamodbav:"email"`
	Telefone   string                `dynamodbav:"telefone"`
	Plan       string                `dynamodbav:"plan"`
	Company    entities.Company      `dynamodbav:"company"`
	Caps       entities.Capabilities `dynamodbav:"caps"`
	UpgradedAt string                `dynamodbav:"upgraded_at"`
}

// AccountDynamoRepository persists the account record in DynamoDB.
//
// Table requirements:
//   - PK: id (string), single record
type AccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb *dynamodb.Client) *AccountDynamoRepository {
	return &AccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCOUNT_TABLE", defaultAccountTableName),
	}
}

func (r *AccountDynamoRepository) Get(ctx context.Context) (entities.Account, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(accountRecordID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Item) == 0 {
		return entities.Account{}, nil
	}
	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Account{}, err
	}
	upgradedAt, _ := time.Parse(time.RFC3339Nano, it.UpgradedAt)
	return entities.Account{
		Nome:       it.Nome,
		Email:      it.Email,
		Telefone:   it.Telefone,
		Plan:       it.Plan,
		Company:    it.Company,
		Caps:       it.Caps,
		UpgradedAt: upgradedAt,
	}, nil
}

func (r *AccountDynamoRepository) Save(ctx context.Context, a entities.Account) (entities.Account, error) {
	it := accountItem{
		ID:       accountRecordID,
		Nome:     a.Nome,
		Email:    a.Email,
		Telefone: a.Telefone,
		Plan:     a.Plan,
		Company:  a.Company,
		Caps:     a.Caps,
	}
	if !a.UpgradedAt.IsZero() {
		it.UpgradedAt = a.UpgradedAt.UTC().Format(time.RFC3339Nano)
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Account{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Account{}, err
	}
	return a, nil
}
