package repository

import (
	"context"
	"errors"
	"time"

	"orcamentix/internal/domain/entities"
	"orcamentix/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteLineItem struct {
	ServiceID string  `dynamodbav:"service_id"`
	Nome      string  `dynamodbav:"nome"`
	Unidade   string  `dynamodbav:"unidade"`
	Preco     float64 `dynamodbav:"preco"`
	Qtd       float64 `dynamodbav:"qtd"`
}

type quoteRevisionItem struct {
	At       string          `dynamodbav:"at"`
	Itens    []quoteLineItem `dynamodbav:"itens"`
	Subtotal float64         `dynamodbav:"subtotal"`
	Total    float64         `dynamodbav:"total"`
	Margem   float64         `dynamodbav:"margem"`
	Desconto float64         `dynamodbav:"desconto"`
	Status   string          `dynamodbav:"status"`
}

type quoteItem struct {
	ID           string              `dynamodbav:"id"`
	Status       string              `dynamodbav:"status"`
	ClienteID    string              `dynamodbav:"cliente_id"`
	ClienteNome  string              `dynamodbav:"cliente_nome"`
	ClienteEmail string              `dynamodbav:"cliente_email"`
	ClienteFone  string              `dynamodbav:"cliente_telefone"`
	ClienteEmp   string              `dynamodbav:"cliente_empresa"`
	Itens        []quoteLineItem     `dynamodbav:"itens"`
	Margem       float64             `dynamodbav:"margem"`
	Desconto     float64             `dynamodbav:"desconto"`
	Subtotal     float64             `dynamodbav:"subtotal"`
	Total        float64             `dynamodbav:"total"`
	Obs          string              `dynamodbav:"obs"`
	CreatedAt    string              `dynamodbav:"created_at"`
	UpdatedAt    string              `dynamodbav:"updated_at"`
	History      []quoteRevisionItem `dynamodbav:"history"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The entity is written whole on every save (items, history and totals in
// one put) so an update's snapshot can never land without its merged fields.
// Reads backfill records written before history/timestamps existed.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(items))
	for _, raw := range items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		out = append(out, fromQuoteItem(it))
	}
	return out, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Save(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:           q.ID,
		Status:       string(q.Status),
		ClienteID:    q.Cliente.ID,
		ClienteNome:  q.Cliente.Nome,
		ClienteEmail: q.Cliente.Email,
		ClienteFone:  q.Cliente.Telefone,
		ClienteEmp:   q.Cliente.Empresa,
		Itens:        toLineItems(q.Itens),
		Margem:       q.Margem,
		Desconto:     q.Desconto,
		Subtotal:     q.Subtotal,
		Total:        q.Total,
		Obs:          q.Obs,
		CreatedAt:    q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    q.UpdatedAt.UTC().Format(time.RFC3339Nano),
		History:      make([]quoteRevisionItem, 0, len(q.History)),
	}
	for _, rev := range q.History {
		it.History = append(it.History, quoteRevisionItem{
			At:       rev.At.UTC().Format(time.RFC3339Nano),
			Itens:    toLineItems(rev.Prev.Itens),
			Subtotal: rev.Prev.Subtotal,
			Total:    rev.Prev.Total,
			Margem:   rev.Prev.Margem,
			Desconto: rev.Prev.Desconto,
			Status:   string(rev.Prev.Status),
		})
	}
	return it
}

// fromQuoteItem converts back to the entity, backfilling legacy records:
// nil history becomes empty and missing timestamps default to each other,
// or to now when both are absent.
func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	if createdAt.IsZero() && updatedAt.IsZero() {
		createdAt = time.Now().UTC()
		updatedAt = createdAt
	} else if createdAt.IsZero() {
		createdAt = updatedAt
	} else if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	q := entities.Quote{
		ID:     it.ID,
		Status: entities.QuoteStatus(it.Status),
		Cliente: entities.ClientSnapshot{
			ID:       it.ClienteID,
			Nome:     it.ClienteNome,
			Email:    it.ClienteEmail,
			Telefone: it.ClienteFone,
			Empresa:  it.ClienteEmp,
		},
		Itens:     fromLineItems(it.Itens),
		Margem:    it.Margem,
		Desconto:  it.Desconto,
		Subtotal:  it.Subtotal,
		Total:     it.Total,
		Obs:       it.Obs,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		History:   make([]entities.QuoteRevision, 0, len(it.History)),
	}
	for _, rev := range it.History {
		at, _ := time.Parse(time.RFC3339Nano, rev.At)
		q.History = append(q.History, entities.QuoteRevision{
			At: at,
			Prev: entities.RevisionSnapshot{
				Itens:    fromLineItems(rev.Itens),
				Subtotal: rev.Subtotal,
				Total:    rev.Total,
				Margem:   rev.Margem,
				Desconto: rev.Desconto,
				Status:   entities.QuoteStatus(rev.Status),
			},
		})
	}
	return q
}

func toLineItems(itens []entities.QuoteItem) []quoteLineItem {
	out := make([]quoteLineItem, 0, len(itens))
	for _, li := range itens {
		out = append(out, quoteLineItem(li))
	}
	return out
}

func fromLineItems(itens []quoteLineItem) []entities.QuoteItem {
	out := make([]entities.QuoteItem, 0, len(itens))
	for _, li := range itens {
		out = append(out, entities.QuoteItem(li))
	}
	return out
}
